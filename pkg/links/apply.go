package links

import (
	"path/filepath"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/rs/zerolog"
)

// Locator maps installed versions to their application bundles and back.
type Locator interface {
	PathOf(v versions.Version) (string, bool)
	VersionAt(path string) (versions.Version, bool)
}

// Applier converges references onto a Plan.
type Applier struct {
	store   *Store
	locator Locator
	dryRun  bool
	logger  zerolog.Logger
}

// NewApplier creates an applier. In dry-run mode Apply reports what it would
// change without touching the filesystem.
func NewApplier(store *Store, locator Locator, dryRun bool) *Applier {
	return &Applier{
		store:   store,
		locator: locator,
		dryRun:  dryRun,
		logger:  logging.GetLogger("links"),
	}
}

// Current returns the installed version a reference resolves to. A missing
// reference, or one pointing outside the installed versions, yields nil.
func (a *Applier) Current(name Name) (*versions.Version, error) {
	target, err := a.store.Read(name)
	if err != nil || target == "" {
		return nil, err
	}
	v, ok := a.locator.VersionAt(target)
	if !ok {
		a.logger.Debug().
			Str("link", string(name)).
			Str("target", target).
			Msg("Link points outside the installed versions")
		return nil, nil
	}
	return &v, nil
}

// Apply points a reference at target and reports whether a write happened
// (or would happen, in dry-run mode). A nil target or a reference that
// already resolves to target is left alone.
func (a *Applier) Apply(name Name, target *versions.Version) (bool, error) {
	if target == nil {
		a.logger.Debug().Str("link", string(name)).Msg("No target planned, leaving link untouched")
		return false, nil
	}

	current, err := a.Current(name)
	if err != nil {
		return false, err
	}
	if current != nil && current.Equal(*target) {
		a.logger.Debug().
			Str("link", string(name)).
			Str("version", target.String()).
			Msg("Link already current")
		return false, nil
	}

	path, ok := a.locator.PathOf(*target)
	if !ok {
		return false, errors.Newf(errors.ErrLink, "no installed bundle for %s", target).
			WithDetail("link", string(name))
	}

	a.logger.Info().
		Str("link", string(name)).
		Str("path", a.store.Path(name)).
		Str("target", filepath.Clean(path)).
		Bool("dryRun", a.dryRun).
		Msg("Updating link")
	if a.dryRun {
		return true, nil
	}
	if err := a.store.Write(name, filepath.Clean(path)); err != nil {
		return false, err
	}
	return true, nil
}
