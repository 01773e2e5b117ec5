package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_TieBreakTable(t *testing.T) {
	tests := []struct {
		name  string
		older string
		newer string
	}{
		{"major", "14.3.1", "15.0"},
		{"minor", "15.0", "15.1"},
		{"minor is numeric", "15.9", "15.10"},
		{"patch", "15.0", "15.0.1"},
		{"stable above prerelease of same triple", "15.0 Release Candidate", "15.0"},
		{"stable above later beta of same triple", "15.0 Beta 8", "15.0"},
		{"newer triple beats stable", "14.3.1", "15.0 Beta 1"},
		{"alpha below beta", "16.0 Alpha 4", "16.0 Beta 1"},
		{"beta below rc", "15.0 Beta 8", "15.0 RC 1"},
		{"beta below release candidate", "15.0 Beta 8", "15.0 Release Candidate"},
		{"gm seed ranks as rc", "12.0 Beta 6", "12.0 GM Seed"},
		{"beta number", "15.1 Beta 2", "15.1 Beta 3"},
		{"beta number is numeric", "15.1 Beta 9", "15.1 Beta 10"},
		{"unnumbered rc is rc 1", "15.0 Release Candidate", "15.0 Release Candidate 2"},
		{"build orders equal qualifiers", "15.0 Beta 2 (15A5209g)", "15.0 Beta 2 (15A5229h)"},
		{"build digit runs are numeric", "15.0 (15A240d)", "15.0 (15A1000a)"},
		{"known build above unknown", "15.0 Beta 2", "15.0 Beta 2 (15A5209g)"},
		{"stable builds break ties", "12.5.1 (12E507)", "12.5.1 (12E508)"},
		{"label separates spellings", "13.0 RC 1", "13.0 Release Candidate 1"},
		{"unnumbered before numbered spelling", "15.0 Beta", "15.0 Beta 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			older := MustParse(tt.older)
			newer := MustParse(tt.newer)

			assert.Equal(t, -1, Compare(older, newer), "%s < %s", tt.older, tt.newer)
			assert.Equal(t, 1, Compare(newer, older), "%s > %s", tt.newer, tt.older)
		})
	}
}

func TestCompare_Equal(t *testing.T) {
	pairs := [][2]string{
		{"15.0", "15.0"},
		{"15.0", "15.0.0"},
		{"13.0 beta 1", "13.0 Beta 1"},
		{"14.3 Release Candidate 2 (14E222a)", "14.3  release candidate 2  (14E222a)"},
	}

	for _, p := range pairs {
		a, b := MustParse(p[0]), MustParse(p[1])
		assert.Equal(t, 0, Compare(a, b), "%q vs %q", p[0], p[1])
		assert.True(t, a.Equal(b))
	}
}

func TestCompare_StrictTotalOrder(t *testing.T) {
	raws := []string{
		"12.0", "12.0 GM Seed", "12.0 Beta 6", "12.5.1 (12E507)", "13.0 Beta 1",
		"13.0 Beta 2", "13.0 RC1", "13.0 RC 1 (13A233)", "13.0", "14.3 Release Candidate",
		"14.3 Release Candidate 2 (14E222a)", "14.3 (14E222b)", "15.0 Beta", "15.0 Beta 1",
		"15.0 Alpha 2", "15.0 (15A240d)", "15.0 (15A1000a)", "15.0.1",
	}
	vs := make([]Version, len(raws))
	for i, raw := range raws {
		vs[i] = MustParse(raw)
	}

	for i := range vs {
		for j := range vs {
			c := Compare(vs[i], vs[j])
			if i == j {
				assert.Equal(t, 0, c)
				continue
			}
			assert.NotEqual(t, 0, c, "%q vs %q must not tie", raws[i], raws[j])
			assert.Equal(t, -c, Compare(vs[j], vs[i]), "antisymmetry for %q vs %q", raws[i], raws[j])
			for k := range vs {
				if c < 0 && Compare(vs[j], vs[k]) < 0 {
					assert.Negative(t, Compare(vs[i], vs[k]), "transitivity %q < %q < %q", raws[i], raws[j], raws[k])
				}
			}
		}
	}
}

func TestSortDescending(t *testing.T) {
	vs := []Version{
		MustParse("15.0"),
		MustParse("13.0 Beta 2"),
		MustParse("15.0 Release Candidate"),
		MustParse("12.1"),
		MustParse("13.0 Beta 1"),
	}

	SortDescending(vs)
	require.Len(t, vs, 5)
	assert.Equal(t, []string{"15.0", "15.0 Release Candidate", "13.0 Beta 2", "13.0 Beta 1", "12.1"}, identifiers(vs))
}

func TestSameToolchain(t *testing.T) {
	rc := MustParse("15.0 Release Candidate (15A240d)")
	release := MustParse("15.0 (15A240d)")
	respin := MustParse("15.0 (15A240e)")
	unknown := MustParse("15.0")

	assert.True(t, rc.SameToolchain(release), "promoted release candidate shares the build")
	assert.True(t, release.SameToolchain(rc))
	assert.False(t, rc.SameToolchain(respin))
	assert.False(t, rc.SameToolchain(unknown), "an unknown build never matches")
	assert.True(t, unknown.SameToolchain(MustParse("15.0")))
}

func identifiers(vs []Version) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Identifier()
	}
	return out
}
