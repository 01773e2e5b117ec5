package versions

import (
	"fmt"
	"strconv"
	"strings"
)

// Track classifies a version as a general release or a prerelease.
type Track int

const (
	Stable Track = iota
	Prerelease
)

// Tracks lists every track in display order.
var Tracks = []Track{Stable, Prerelease}

func (t Track) String() string {
	switch t {
	case Stable:
		return "stable"
	case Prerelease:
		return "prerelease"
	default:
		return "unknown"
	}
}

// Qualifier is the prerelease kind carried by an identifier.
type Qualifier int

const (
	QualifierNone Qualifier = iota
	QualifierAlpha
	QualifierBeta
	QualifierRC
)

func (q Qualifier) String() string {
	switch q {
	case QualifierNone:
		return ""
	case QualifierAlpha:
		return "alpha"
	case QualifierBeta:
		return "beta"
	case QualifierRC:
		return "rc"
	default:
		return "unknown"
	}
}

// Version is an immutable, comparable Xcode version.
type Version struct {
	major, minor, patch int
	qualifier           Qualifier
	label               string
	number              int
	build               string
}

func (v Version) Major() int           { return v.major }
func (v Version) Minor() int           { return v.minor }
func (v Version) Patch() int           { return v.patch }
func (v Version) Qualifier() Qualifier { return v.qualifier }

// Label is the qualifier as written, canonicalised ("Beta", "Release
// Candidate", "GM Seed"). Empty for releases.
func (v Version) Label() string { return v.label }

// Number is the qualifier number ("Beta 3" -> 3), 0 when absent.
func (v Version) Number() int { return v.number }

// Build is the Apple build identifier, empty when the listing omitted it.
func (v Version) Build() string { return v.build }

// Track classifies the version. A qualifier makes it a prerelease.
func (v Version) Track() Track {
	if v.qualifier == QualifierNone {
		return Stable
	}
	return Prerelease
}

// IsPrerelease reports whether the version belongs to the prerelease track.
func (v Version) IsPrerelease() bool {
	return v.Track() == Prerelease
}

// Identifier renders the version the way xcodes accepts it on its command
// line, without the build identifier.
func (v Version) Identifier() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.minor))
	if v.patch != 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(v.patch))
	}
	if v.qualifier != QualifierNone {
		b.WriteByte(' ')
		b.WriteString(v.label)
		if v.number > 0 {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(v.number))
		}
	}
	return b.String()
}

// String renders the identifier followed by the build, if known.
func (v Version) String() string {
	if v.build == "" {
		return v.Identifier()
	}
	return fmt.Sprintf("%s (%s)", v.Identifier(), v.build)
}

// Equal reports whether both values denote the same identifier.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == 0
}

// SameToolchain reports whether two versions ship the same bits. This is
// the case for equal versions and for a release candidate that was later
// published unchanged as a release: both carry the same build identifier.
func (v Version) SameToolchain(other Version) bool {
	if v.Equal(other) {
		return true
	}
	return v.build != "" && v.build == other.build
}

// MarshalText encodes the version as its display string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a display string produced by MarshalText.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
