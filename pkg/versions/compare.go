package versions

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns -1, 0 or +1 as a is older than, the same as, or newer
// than b. It is a strict total order: distinct identifiers never compare 0.
func Compare(a, b Version) int {
	if c := cmp.Compare(a.major, b.major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.minor, b.minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.patch, b.patch); c != 0 {
		return c
	}

	// A release outranks every prerelease of the same triple.
	if a.IsPrerelease() != b.IsPrerelease() {
		if a.IsPrerelease() {
			return -1
		}
		return 1
	}

	if c := cmp.Compare(a.qualifier, b.qualifier); c != 0 {
		return c
	}
	if c := cmp.Compare(effectiveNumber(a), effectiveNumber(b)); c != 0 {
		return c
	}
	if c := compareBuild(a.build, b.build); c != 0 {
		return c
	}
	if c := strings.Compare(a.label, b.label); c != 0 {
		return c
	}
	return cmp.Compare(a.number, b.number)
}

// SortDescending orders versions newest first.
func SortDescending(vs []Version) {
	slices.SortFunc(vs, func(a, b Version) int { return Compare(b, a) })
}

// "Beta" and "Beta 1" are the same step of a prerelease cycle.
func effectiveNumber(v Version) int {
	if v.qualifier != QualifierNone && v.number == 0 {
		return 1
	}
	return v.number
}

// compareBuild orders Apple build identifiers. A known build sorts after an
// unknown one; otherwise digit runs compare numerically and everything else
// byte-wise.
func compareBuild(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}

	origA, origB := a, b

	for a != "" && b != "" {
		ca, restA := nextChunk(a)
		cb, restB := nextChunk(b)
		if c := compareChunk(ca, cb); c != 0 {
			return c
		}
		a, b = restA, restB
	}
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(origA, origB)
}

func nextChunk(s string) (string, string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

func compareChunk(a, b string) int {
	if isDigit(a[0]) && isDigit(b[0]) {
		a = strings.TrimLeft(a, "0")
		b = strings.TrimLeft(b, "0")
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
