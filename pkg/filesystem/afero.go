package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/xcupdate/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS over any afero backend. Backends that
// implement afero.Linker and afero.Lstater, like the OS one, use real
// symlinks. The others get simulated links: the target is stored as file
// content and the path is remembered so Lstat can report it as a link.
type aferoFS struct {
	fs afero.Fs

	mu        sync.Mutex
	simulated map[string]bool
}

// NewAferoFS wraps an afero backend.
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs, simulated: map[string]bool{}}
}

// NewOS returns the host filesystem, where the links under /Applications
// and the state file live.
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem, used for dry-run state
// writes.
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// Stat follows simulated links to their target.
func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	if !a.isSimulated(name) {
		return a.fs.Stat(name)
	}
	target, err := a.Readlink(name)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(name), target)
	}
	return a.Stat(target)
}

func (a *aferoFS) mark(name string, link bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if link {
		a.simulated[filepath.Clean(name)] = true
	} else {
		delete(a.simulated, filepath.Clean(name))
	}
}

func (a *aferoFS) isSimulated(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.simulated[filepath.Clean(name)]
}

// linkInfo reports a simulated link as a symlink.
type linkInfo struct {
	fs.FileInfo
}

func (l linkInfo) Mode() fs.FileMode {
	return l.FileInfo.Mode() | fs.ModeSymlink
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	if _, err := a.Lstat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrExist}
	}
	if err := afero.WriteFile(a.fs, newname, []byte(oldname), 0777); err != nil {
		return err
	}
	a.mark(newname, true)
	return nil
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	if !a.isSimulated(name) {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	content, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (a *aferoFS) Remove(name string) error {
	if err := a.fs.Remove(name); err != nil {
		return err
	}
	a.mark(name, false)
	return nil
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	if err := a.fs.Rename(oldpath, newpath); err != nil {
		return err
	}
	link := a.isSimulated(oldpath)
	a.mark(oldpath, false)
	a.mark(newpath, link)
	return nil
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if a.isSimulated(name) {
		info, err := a.fs.Stat(name)
		if err != nil {
			return nil, err
		}
		return linkInfo{info}, nil
	}
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}
