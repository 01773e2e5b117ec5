package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	moved := filepath.Join(tmpDir, "moved.txt")
	require.NoError(t, fs.Rename(testFile, moved))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(moved))
	_, err = fs.Stat(moved)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS_Symlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	bundle := filepath.Join(tmpDir, "Xcode-15.0.0.app")
	link := filepath.Join(tmpDir, "Xcode.app")
	require.NoError(t, fs.MkdirAll(bundle, 0755))

	require.NoError(t, fs.Symlink(bundle, link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, bundle, target)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = fs.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "Stat follows the link")
}

func TestAferoFS_Memory(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/state/xcupdate", 0755))
	require.NoError(t, fs.WriteFile("/state/xcupdate/last-run.json", []byte(`{}`), 0644))

	content, err := fs.ReadFile("/state/xcupdate/last-run.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(content))

	_, err = fs.ReadFile("/state/xcupdate")
	assert.Error(t, err, "reading a directory fails")

	require.NoError(t, fs.Rename("/state/xcupdate/last-run.json", "/state/xcupdate/previous.json"))
	_, err = fs.Stat("/state/xcupdate/last-run.json")
	assert.Error(t, err)

	info, err := fs.Lstat("/state/xcupdate/previous.json")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestAferoFS_SimulatedSymlink(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.Symlink("/Applications/Xcode-15.0.0.app", "/Applications/Xcode.app"))

	target, err := fs.Readlink("/Applications/Xcode.app")
	require.NoError(t, err)
	assert.Equal(t, "/Applications/Xcode-15.0.0.app", target)
}

func TestAferoFS_OsBacked(t *testing.T) {
	fs := NewAferoFS(afero.NewOsFs())
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "Xcode-beta.app")

	require.NoError(t, fs.Symlink(tmpDir, link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, target)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestAferoFS_SimulatedSymlinkLifecycle(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/Applications", 0755))

	require.NoError(t, fs.Symlink("/Applications/Xcode-15.0.0.app", "/Applications/Xcode.app.tmp"))
	assert.Error(t, fs.Symlink("/elsewhere", "/Applications/Xcode.app.tmp"))

	require.NoError(t, fs.Rename("/Applications/Xcode.app.tmp", "/Applications/Xcode.app"))

	info, err := fs.Lstat("/Applications/Xcode.app")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = fs.Lstat("/Applications/Xcode.app.tmp")
	assert.True(t, os.IsNotExist(err))

	_, err = fs.Stat("/Applications/Xcode.app")
	assert.True(t, os.IsNotExist(err), "dangling link")
	require.NoError(t, fs.MkdirAll("/Applications/Xcode-15.0.0.app", 0755))
	info, err = fs.Stat("/Applications/Xcode.app")
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "Stat follows the link")

	require.NoError(t, fs.WriteFile("/Applications/notes.txt", []byte("hi"), 0644))
	_, err = fs.Readlink("/Applications/notes.txt")
	assert.Error(t, err)
	info, err = fs.Lstat("/Applications/notes.txt")
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	require.NoError(t, fs.Remove("/Applications/Xcode.app"))
	_, err = fs.Lstat("/Applications/Xcode.app")
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS_DanglingLink(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	link := filepath.Join(tmpDir, "Xcode-beta.app")

	require.NoError(t, fs.Symlink(filepath.Join(tmpDir, "Xcode-16.0.0-Beta.app"), link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = fs.Stat(link)
	assert.True(t, os.IsNotExist(err), "Stat follows a dangling link")

	require.NoError(t, fs.Rename(link, link+".old"))
	target, err := fs.Readlink(link + ".old")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "Xcode-16.0.0-Beta.app"), target)
}
