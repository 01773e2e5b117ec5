package links

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linkNames = map[Name]string{
	StableLink: "Xcode.app",
	BetaLink:   "Xcode-beta.app",
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(filesystem.NewOS(), dir, linkNames), dir
}

func makeBundle(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

func TestStore_ReadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	target, err := store.Read(StableLink)
	require.NoError(t, err)
	assert.Empty(t, target)
}

func TestStore_WriteAndRead(t *testing.T) {
	store, dir := newTestStore(t)
	bundle := makeBundle(t, dir, "Xcode-15.0.0.app")

	require.NoError(t, store.Write(StableLink, bundle))

	target, err := store.Read(StableLink)
	require.NoError(t, err)
	assert.Equal(t, bundle, target)

	_, err = os.Lstat(filepath.Join(dir, "Xcode.app"+tempSuffix))
	assert.True(t, os.IsNotExist(err), "temporary link is renamed away")
}

func TestStore_WriteReplacesExistingLink(t *testing.T) {
	store, dir := newTestStore(t)
	older := makeBundle(t, dir, "Xcode-14.3.1.app")
	newer := makeBundle(t, dir, "Xcode-15.0.0.app")
	require.NoError(t, os.Symlink(older, filepath.Join(dir, "Xcode.app")))

	require.NoError(t, store.Write(StableLink, newer))

	target, err := store.Read(StableLink)
	require.NoError(t, err)
	assert.Equal(t, newer, target)

	_, err = os.Stat(older)
	assert.NoError(t, err, "the previous bundle is untouched")
}

func TestStore_ReadRelativeLink(t *testing.T) {
	store, dir := newTestStore(t)
	bundle := makeBundle(t, dir, "Xcode-15.1.0-Beta.app")
	require.NoError(t, os.Symlink("Xcode-15.1.0-Beta.app", filepath.Join(dir, "Xcode-beta.app")))

	target, err := store.Read(BetaLink)
	require.NoError(t, err)
	assert.Equal(t, bundle, target)
}

func TestStore_ConflictWithRealBundle(t *testing.T) {
	store, dir := newTestStore(t)
	makeBundle(t, dir, "Xcode.app")
	other := makeBundle(t, dir, "Xcode-15.0.0.app")

	_, err := store.Read(StableLink)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkConflict))

	err = store.Write(StableLink, other)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkConflict))

	info, statErr := os.Lstat(filepath.Join(dir, "Xcode.app"))
	require.NoError(t, statErr)
	assert.True(t, info.IsDir(), "a real bundle is never replaced")
}

func TestStore_WriteClearsStaleTemporaryLink(t *testing.T) {
	store, dir := newTestStore(t)
	bundle := makeBundle(t, dir, "Xcode-15.0.0.app")
	require.NoError(t, os.Symlink("/nowhere", filepath.Join(dir, "Xcode.app"+tempSuffix)))

	require.NoError(t, store.Write(StableLink, bundle))

	target, err := store.Read(StableLink)
	require.NoError(t, err)
	assert.Equal(t, bundle, target)
}
