package display

import (
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildList(t *testing.T) {
	v150 := versions.MustParse("15.0 (15A240d)")
	v151 := versions.MustParse("15.1 (15C65)")
	b2 := versions.MustParse("15.2 Beta 2 (15C5500c)")
	b1 := versions.MustParse("15.2 Beta (15C5028h)")

	available := []versions.Version{v150, v151, b1, b2}
	installed := []Installed{
		{Version: v150, Path: "/Applications/Xcode-15.0.0.app"},
		{Version: b1, Path: "/Applications/Xcode-15.2.0-Beta.app"},
	}
	linked := map[string]versions.Version{
		"Xcode.app":      v150,
		"Xcode-beta.app": b1,
	}

	res := BuildList(available, installed, linked)
	require.Len(t, res.Groups, 2)

	stable := res.Groups[0]
	assert.Equal(t, "stable", stable.Track)
	require.Len(t, stable.Entries, 2)
	assert.Equal(t, VersionEntry{
		Version:   v151.String(),
		Track:     "stable",
		Available: true,
		Latest:    true,
	}, stable.Entries[0])
	assert.Equal(t, VersionEntry{
		Version:   v150.String(),
		Track:     "stable",
		Available: true,
		Installed: true,
		Path:      "/Applications/Xcode-15.0.0.app",
		Links:     []string{"Xcode.app"},
	}, stable.Entries[1])

	pre := res.Groups[1]
	assert.Equal(t, "prerelease", pre.Track)
	require.Len(t, pre.Entries, 2)
	assert.Equal(t, b2.String(), pre.Entries[0].Version)
	assert.True(t, pre.Entries[0].Latest)
	assert.Equal(t, []string{"Xcode-beta.app"}, pre.Entries[1].Links)
}

func TestBuildList_InstalledButNoLongerAvailable(t *testing.T) {
	old := versions.MustParse("14.3.1 (14E300c)")
	res := BuildList(nil, []Installed{{Version: old, Path: "/Applications/Xcode-14.3.1.app"}}, nil)

	require.Len(t, res.Groups[0].Entries, 1)
	entry := res.Groups[0].Entries[0]
	assert.True(t, entry.Installed)
	assert.False(t, entry.Available)
	assert.False(t, entry.Latest)
	assert.Empty(t, res.Groups[1].Entries)
	assert.NotNil(t, res.Groups[1].Entries)
}
