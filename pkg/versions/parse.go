package versions

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/errors"
)

var identifierPattern = regexp.MustCompile(
	`(?i)^(\d+)(?:\.(\d+))?(?:\.(\d+))?` +
		`(?:\s*(alpha|beta|release candidate|rc|gm seed|gm)(?:\s*(\d+))?)?` +
		`(?:\s+\(([0-9]+[a-z]+[0-9]+[a-z]*)\))?$`)

// Parse turns an identifier such as "15.1 Beta 3 (15C5042i)" into a Version.
// Anything that is not a numeric release with an optional qualifier and an
// optional parenthesised build fails with an ErrParse error.
func Parse(raw string) (Version, error) {
	trimmed := strings.Join(strings.Fields(raw), " ")
	m := identifierPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Version{}, parseError(raw, nil)
	}

	var v Version
	var err error
	if v.major, err = atoi(m[1]); err != nil {
		return Version{}, parseError(raw, err)
	}
	if v.minor, err = atoi(m[2]); err != nil {
		return Version{}, parseError(raw, err)
	}
	if v.patch, err = atoi(m[3]); err != nil {
		return Version{}, parseError(raw, err)
	}

	if m[4] != "" {
		v.qualifier, v.label = classifyQualifier(m[4])
		if v.number, err = atoi(m[5]); err != nil {
			return Version{}, parseError(raw, err)
		}
	}
	v.build = m[6]

	return v, nil
}

// MustParse is Parse for identifiers known to be valid. It panics otherwise.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseAll parses every identifier, skipping the ones that fail. The
// returned errors are one ErrParse per skipped identifier, in input order.
func ParseAll(raws []string) ([]Version, []error) {
	parsed := make([]Version, 0, len(raws))
	var skipped []error
	for _, raw := range raws {
		v, err := Parse(raw)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		parsed = append(parsed, v)
	}
	return parsed, skipped
}

// classifyQualifier maps the qualifier text onto its kind and a canonical
// label. xcodes labels the final prerelease "GM" or "GM Seed" on older
// releases; both rank as release candidates.
func classifyQualifier(text string) (Qualifier, string) {
	switch strings.ToLower(text) {
	case "alpha":
		return QualifierAlpha, "Alpha"
	case "beta":
		return QualifierBeta, "Beta"
	case "rc":
		return QualifierRC, "RC"
	case "release candidate":
		return QualifierRC, "Release Candidate"
	case "gm":
		return QualifierRC, "GM"
	default:
		return QualifierRC, "GM Seed"
	}
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseError(raw string, cause error) error {
	if cause != nil {
		return errors.Wrapf(cause, errors.ErrParse, "unrecognised version identifier %q", raw).
			WithDetail("raw", raw)
	}
	return errors.Newf(errors.ErrParse, "unrecognised version identifier %q", raw).
		WithDetail("raw", raw)
}
