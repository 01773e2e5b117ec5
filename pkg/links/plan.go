package links

import (
	"github.com/arthur-debert/xcupdate/pkg/versions"
)

// Name identifies a managed reference.
type Name string

const (
	StableLink Name = "stable-link"
	BetaLink   Name = "beta-link"
)

// Names lists the managed references in the order they are applied.
var Names = []Name{BetaLink, StableLink}

// Plan holds the desired target of each reference. A nil target means the
// reference is left as it is.
type Plan struct {
	Beta   *versions.Version
	Stable *versions.Version

	// BetaChanged is set when Beta differs from the beta reference's
	// target at planning time.
	BetaChanged bool
}

// Target returns the planned target for a reference.
func (p Plan) Target(name Name) *versions.Version {
	switch name {
	case BetaLink:
		return p.Beta
	case StableLink:
		return p.Stable
	default:
		return nil
	}
}

// Targets returns the planned targets that are set.
func (p Plan) Targets() []versions.Version {
	var out []versions.Version
	for _, name := range Names {
		if t := p.Target(name); t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// Deduplicated reports whether the stable reference was withheld because
// the beta reference already points at the same toolchain.
func (p Plan) Deduplicated(latestStable *versions.Version) bool {
	return p.Stable == nil && latestStable != nil
}

// PlanTargets computes the desired targets. The beta reference always
// follows the newest prerelease. The stable reference follows the newest
// release, unless that release is the same toolchain as the newest
// prerelease: a release candidate published unchanged stays on the beta
// reference only until a newer prerelease supersedes it.
//
// currentBeta only feeds BetaChanged; it never alters the targets.
func PlanTargets(latestStable, latestPrerelease, currentBeta *versions.Version) Plan {
	plan := Plan{
		Beta:        clone(latestPrerelease),
		BetaChanged: !sameTarget(latestPrerelease, currentBeta),
	}

	if plan.Beta != nil && latestStable != nil && latestStable.SameToolchain(*plan.Beta) {
		return plan
	}
	plan.Stable = clone(latestStable)
	return plan
}

func sameTarget(a, b *versions.Version) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func clone(v *versions.Version) *versions.Version {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
