// Package retention decides which installed versions can be removed.
package retention

import (
	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/versions"
)

// Policy is the number of most recent versions kept per track.
type Policy struct {
	KeepStable     int
	KeepPrerelease int
}

// DefaultPolicy keeps one version of each track.
var DefaultPolicy = Policy{KeepStable: 1, KeepPrerelease: 1}

// Keep returns the retention window of a track.
func (p Policy) Keep(track versions.Track) int {
	if track == versions.Prerelease {
		return p.KeepPrerelease
	}
	return p.KeepStable
}

// Validate rejects windows smaller than one version. The error carries the
// configuration key that sets the window.
func (p Policy) Validate() error {
	for _, track := range versions.Tracks {
		if p.Keep(track) < 1 {
			return errors.Newf(errors.ErrConfigValid,
				"number of %s versions to keep must be at least 1, got %d", track, p.Keep(track)).
				WithDetail("key", "retention."+track.String()).
				WithDetail("track", track.String())
		}
	}
	return nil
}

// Outcome records, per track, whether this run installed a version newer
// than the previous latest.
type Outcome struct {
	StableUpdated     bool
	PrereleaseUpdated bool
}

// Updated reports whether a track was updated.
func (o Outcome) Updated(track versions.Track) bool {
	if track == versions.Prerelease {
		return o.PrereleaseUpdated
	}
	return o.StableUpdated
}

// MarkUpdated flags a track as updated.
func (o *Outcome) MarkUpdated(track versions.Track) {
	if track == versions.Prerelease {
		o.PrereleaseUpdated = true
		return
	}
	o.StableUpdated = true
}

// VersionsToDelete returns the installed versions that fall outside the
// retention window of a track updated during this run, newest first.
//
// A track that was not updated is never trimmed, even when it holds more
// versions than the policy allows. Versions in protected (the current and
// planned link targets) are never returned, so a track can end a run with
// more versions than its window.
func VersionsToDelete(installed *versions.InstalledSet, policy Policy, outcome Outcome, protected []versions.Version) ([]versions.Version, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	logger := logging.GetLogger("retention")

	var doomed []versions.Version
	for _, track := range versions.Tracks {
		members := installed.Track(track)
		keep := policy.Keep(track)
		if len(members) <= keep {
			continue
		}
		if !outcome.Updated(track) {
			logger.Debug().
				Str("track", track.String()).
				Int("installed", len(members)).
				Int("keep", keep).
				Msg("Track not updated this run, leaving it untouched")
			continue
		}

		for _, candidate := range members[keep:] {
			if contains(protected, candidate) {
				logger.Info().
					Str("track", track.String()).
					Str("version", candidate.String()).
					Msg("Keeping linked version outside the retention window")
				continue
			}
			doomed = append(doomed, candidate)
		}
	}

	versions.SortDescending(doomed)
	return doomed, nil
}

func contains(vs []versions.Version, target versions.Version) bool {
	for _, v := range vs {
		if v.Equal(target) {
			return true
		}
	}
	return false
}
