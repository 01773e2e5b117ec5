package update

import (
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	v150 := versions.MustParse("15.0 (15A240d)")
	v151 := versions.MustParse("15.1 (15C65)")

	c := NewCatalog()
	c.Add(v150, "/Applications/Xcode-15.0.0.app/")
	c.Add(v150, "/elsewhere/Xcode.app")
	c.Add(v151, "")

	path, ok := c.PathOf(v150)
	require.True(t, ok)
	assert.Equal(t, "/Applications/Xcode-15.0.0.app", path, "first path wins, cleaned")

	_, ok = c.PathOf(v151)
	assert.False(t, ok, "versions without a path have no bundle")

	v, ok := c.VersionAt("/Applications/Xcode-15.0.0.app")
	require.True(t, ok)
	assert.True(t, v.Equal(v150))

	_, ok = c.VersionAt("")
	assert.False(t, ok)

	assert.Equal(t, 2, c.Set().Len())
}

func TestCatalogOf(t *testing.T) {
	catalog, skipped := CatalogOf([]xcodes.Installation{
		{Identifier: "15.0 (15A240d)", Path: "/Applications/Xcode-15.0.0.app"},
		{Identifier: "Xcode Cloud", Path: "/Applications/Cloud.app"},
	})

	assert.Equal(t, 1, catalog.Set().Len())
	require.Len(t, skipped, 1)
	assert.True(t, errors.IsErrorCode(skipped["Xcode Cloud"], errors.ErrParse))

	_, none := CatalogOf(nil)
	assert.Nil(t, none)
}
