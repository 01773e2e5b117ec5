package links

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/types"
)

const tempSuffix = ".xcupdate-tmp"

// Store reads and writes the managed symlinks inside one directory.
type Store struct {
	fs    types.FS
	dir   string
	names map[Name]string
}

// NewStore creates a store for links living in dir. names maps each
// reference to its file name, e.g. StableLink -> "Xcode.app".
func NewStore(fsys types.FS, dir string, names map[Name]string) *Store {
	return &Store{fs: fsys, dir: dir, names: names}
}

// Dir returns the directory holding the references.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute location of a reference.
func (s *Store) Path(name Name) string {
	return filepath.Join(s.dir, s.names[name])
}

// Read returns the cleaned absolute path a reference points at, or "" when
// the reference does not exist. A regular file or directory in its place
// is reported as ErrLinkConflict.
func (s *Store) Read(name Name) (string, error) {
	path := s.Path(name)
	info, err := s.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrLink, "cannot inspect %s", path).
			WithDetail("link", string(name))
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return "", errors.Newf(errors.ErrLinkConflict, "%s exists and is not a symlink", path).
			WithDetail("link", string(name))
	}

	target, err := s.fs.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLink, "cannot read %s", path).
			WithDetail("link", string(name))
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.dir, target)
	}
	return filepath.Clean(target), nil
}

// Write points a reference at target. The new link is created next to the
// old one and renamed over it, so the reference never disappears. A real
// file or directory in the reference's place is never replaced.
func (s *Store) Write(name Name, target string) error {
	path := s.Path(name)
	if _, err := s.Read(name); err != nil {
		return err
	}

	tmp := path + tempSuffix
	if err := s.fs.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrLink, "cannot clear %s", tmp).
			WithDetail("link", string(name))
	}
	if err := s.fs.Symlink(target, tmp); err != nil {
		return errors.Wrapf(err, errors.ErrLink, "cannot create %s", tmp).
			WithDetail("link", string(name)).
			WithDetail("target", target)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrLink, "cannot replace %s", path).
			WithDetail("link", string(name)).
			WithDetail("target", target)
	}
	return nil
}
