package versions

import (
	"testing"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		major      int
		minor      int
		patch      int
		qualifier  Qualifier
		number     int
		build      string
		track      Track
		identifier string
	}{
		{"release", "15.0", 15, 0, 0, QualifierNone, 0, "", Stable, "15.0"},
		{"patch release", "14.3.1", 14, 3, 1, QualifierNone, 0, "", Stable, "14.3.1"},
		{"major only", "12", 12, 0, 0, QualifierNone, 0, "", Stable, "12.0"},
		{"release with build", "15.0 (15A240d)", 15, 0, 0, QualifierNone, 0, "15A240d", Stable, "15.0"},
		{"beta", "15.1 Beta 3", 15, 1, 0, QualifierBeta, 3, "", Prerelease, "15.1 Beta 3"},
		{"beta lowercase", "13.0 beta 1", 13, 0, 0, QualifierBeta, 1, "", Prerelease, "13.0 Beta 1"},
		{"beta with build", "15.1 Beta 3 (15C5042i)", 15, 1, 0, QualifierBeta, 3, "15C5042i", Prerelease, "15.1 Beta 3"},
		{"glued rc", "13.0 RC1", 13, 0, 0, QualifierRC, 1, "", Prerelease, "13.0 RC 1"},
		{"release candidate", "14.3 Release Candidate 2 (14E222a)", 14, 3, 0, QualifierRC, 2, "14E222a", Prerelease, "14.3 Release Candidate 2"},
		{"unnumbered release candidate", "15.0 Release Candidate", 15, 0, 0, QualifierRC, 0, "", Prerelease, "15.0 Release Candidate"},
		{"alpha", "16.0 Alpha", 16, 0, 0, QualifierAlpha, 0, "", Prerelease, "16.0 Alpha"},
		{"gm seed", "12.0 GM Seed", 12, 0, 0, QualifierRC, 0, "", Prerelease, "12.0 GM Seed"},
		{"gm", "11.0 GM", 11, 0, 0, QualifierRC, 0, "", Prerelease, "11.0 GM"},
		{"surrounding whitespace", "  15.2\t(15C500b) ", 15, 2, 0, QualifierNone, 0, "15C500b", Stable, "15.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.raw)
			require.NoError(t, err)

			assert.Equal(t, tt.major, v.Major())
			assert.Equal(t, tt.minor, v.Minor())
			assert.Equal(t, tt.patch, v.Patch())
			assert.Equal(t, tt.qualifier, v.Qualifier())
			assert.Equal(t, tt.number, v.Number())
			assert.Equal(t, tt.build, v.Build())
			assert.Equal(t, tt.track, v.Track())
			assert.Equal(t, tt.identifier, v.Identifier())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"Xcode",
		"v15.0",
		"15.0 Preview 2",
		"15.0.1.2",
		"15.0 Beta two",
		"15.0 (Installed)",
		"99999999999999999999.0",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
			assert.Equal(t, raw, errors.GetErrorDetails(err)["raw"])
		})
	}
}

func TestParseAll_SkipsMalformedEntries(t *testing.T) {
	parsed, skipped := ParseAll([]string{"15.0", "garbage", "15.1 Beta 1", "", "14.3.1"})

	require.Len(t, parsed, 3)
	assert.Equal(t, "15.0", parsed[0].Identifier())
	assert.Equal(t, "15.1 Beta 1", parsed[1].Identifier())
	assert.Equal(t, "14.3.1", parsed[2].Identifier())

	require.Len(t, skipped, 2)
	for _, err := range skipped {
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a version") })
	assert.NotPanics(t, func() { MustParse("15.0") })
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "15.0", MustParse("15.0").String())
	assert.Equal(t, "15.1 Beta 3 (15C5042i)", MustParse("15.1 Beta 3 (15C5042i)").String())
}

func TestVersion_TextRoundTrip(t *testing.T) {
	original := MustParse("14.3 Release Candidate 2 (14E222a)")

	text, err := original.MarshalText()
	require.NoError(t, err)

	var decoded Version
	require.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, original.Equal(decoded))

	assert.Error(t, decoded.UnmarshalText([]byte("nope")))
}

func TestTrack_String(t *testing.T) {
	assert.Equal(t, "stable", Stable.String())
	assert.Equal(t, "prerelease", Prerelease.String())
	assert.Equal(t, "unknown", Track(9).String())
}
