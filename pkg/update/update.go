package update

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/retention"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/rs/zerolog"
)

// Toolchains is the xcodes surface a run depends on.
type Toolchains interface {
	ListAvailable(ctx context.Context) ([]string, error)
	ListInstalled(ctx context.Context) ([]xcodes.Installation, error)
	Install(ctx context.Context, v versions.Version) error
	Uninstall(ctx context.Context, v versions.Version) error
}

// Options controls a run.
type Options struct {
	Policy retention.Policy
	// SkipDelete computes the deletion set without removing anything.
	SkipDelete bool
	// DryRun computes every stage without installing, linking or deleting.
	DryRun bool
	// InstallPrerelease allows installing new prereleases. Already installed
	// prereleases are linked and retained either way.
	InstallPrerelease bool
}

// DefaultOptions keeps one version per track and installs prereleases.
func DefaultOptions() Options {
	return Options{Policy: retention.DefaultPolicy, InstallPrerelease: true}
}

// Updater runs updates against one xcodes client and one link directory.
type Updater struct {
	toolchains Toolchains
	links      *links.Store
	now        func() time.Time
	logger     zerolog.Logger
}

// New creates an updater.
func New(toolchains Toolchains, store *links.Store) *Updater {
	return &Updater{
		toolchains: toolchains,
		links:      store,
		now:        time.Now,
		logger:     logging.GetLogger("update"),
	}
}

// Run performs one update. The returned report is never nil; failures are
// recorded in Report.Errors.
func (u *Updater) Run(ctx context.Context, opts Options) *Report {
	r := &run{
		Updater: u,
		ctx:     ctx,
		opts:    opts,
		report:  newReport(opts.DryRun, u.now()),
	}
	done := logging.LogOperationStart(u.logger, "update")
	defer done()

	r.execute()
	r.report.FinishedAt = u.now()
	return r.report
}

// run carries the state of one Run between stages.
type run struct {
	*Updater
	ctx    context.Context
	opts   Options
	report *Report

	available []versions.Version
	catalog   *Catalog
	selected  []versions.Version
	outcome   retention.Outcome
	current   map[links.Name]*versions.Version
}

func (r *run) execute() {
	if err := r.opts.Policy.Validate(); err != nil {
		r.fail(err)
		return
	}

	steps := []struct {
		stage Stage
		fn    func() error
	}{
		{StageListed, r.list},
		{StageSelected, r.selectVersions},
		{StageInstalled, r.install},
		{StageLinked, r.link},
		{StageRetained, r.retain},
	}
	for _, step := range steps {
		if err := r.ctx.Err(); err != nil {
			r.fail(errors.Wrap(err, errors.ErrInternal, "update interrupted"))
			return
		}
		if err := step.fn(); err != nil {
			r.fail(err)
			return
		}
		r.report.Stage = step.stage
		r.logger.Debug().Stringer("stage", step.stage).Msg("Stage complete")
	}
	r.report.Stage = StageDone
}

func (r *run) fail(err error) {
	r.logger.Error().
		Err(err).
		Stringer("stage", r.report.Stage).
		Msg("Update stopped")
	r.report.Errors = append(r.report.Errors, err)
}

// warn records msg once per run.
func (r *run) warn(msg string) {
	for _, w := range r.report.Warnings {
		if w == msg {
			return
		}
	}
	r.report.Warnings = append(r.report.Warnings, msg)
}

func (r *run) list() error {
	raw, err := r.toolchains.ListAvailable(r.ctx)
	if err != nil {
		return err
	}
	available, skipped := versions.ParseAll(raw)
	for _, err := range skipped {
		r.skip(err)
	}
	r.available = available

	catalog, err := r.readInstalled()
	if err != nil {
		return err
	}
	r.catalog = catalog

	r.logger.Info().
		Int("available", len(r.available)).
		Int("installed", len(catalog.entries)).
		Msg("Listed Xcode versions")
	return nil
}

func (r *run) readInstalled() (*Catalog, error) {
	found, err := r.toolchains.ListInstalled(r.ctx)
	if err != nil {
		return nil, err
	}
	catalog, skipped := CatalogOf(found)
	for _, inst := range found {
		if err, ok := skipped[inst.Identifier]; ok {
			r.skip(err)
		}
	}
	return catalog, nil
}

func (r *run) skip(err error) {
	r.logger.Warn().
		Err(err).
		Interface("raw", errors.GetErrorDetails(err)["raw"]).
		Msg("Skipping unrecognised version")
	r.warn(SkipWarning(err))
}

func (r *run) selectVersions() error {
	installed := r.catalog.Set()
	for _, track := range versions.Tracks {
		if track == versions.Prerelease && !r.opts.InstallPrerelease {
			r.logger.Debug().Msg("Prerelease installs disabled")
			continue
		}
		candidate := versions.Latest(r.available, track)
		if candidate == nil {
			continue
		}
		if latest := installed.Latest(track); latest != nil && versions.Compare(*candidate, *latest) <= 0 {
			r.logger.Debug().
				Stringer("track", track).
				Stringer("installed", latest).
				Msg("Track is up to date")
			continue
		}
		r.selected = append(r.selected, *candidate)
	}
	return nil
}

func (r *run) install() error {
	for _, v := range r.selected {
		r.logger.Info().Stringer("version", v).Bool("dryRun", r.opts.DryRun).Msg("Installing")
		if !r.opts.DryRun {
			if err := r.toolchains.Install(r.ctx, v); err != nil {
				return err
			}
		}
		r.report.Installed = append(r.report.Installed, v)
		r.outcome.MarkUpdated(v.Track())
	}

	if len(r.selected) == 0 {
		return nil
	}
	if r.opts.DryRun {
		for _, v := range r.selected {
			r.catalog.Add(v, filepath.Join(r.links.Dir(), xcodes.BundleName(v)))
		}
		return nil
	}

	catalog, err := r.readInstalled()
	if err != nil {
		return err
	}
	for _, v := range r.selected {
		if _, ok := catalog.PathOf(v); !ok {
			r.logger.Warn().Stringer("version", v).Msg("Installed version missing from installed list")
			catalog.Add(v, "")
		}
	}
	r.catalog = catalog
	return nil
}

func (r *run) link() error {
	applier := links.NewApplier(r.links, r.catalog, r.opts.DryRun)

	r.current = map[links.Name]*versions.Version{}
	for _, name := range links.Names {
		current, err := applier.Current(name)
		if err != nil {
			return err
		}
		r.current[name] = current
	}

	installed := r.catalog.Set()
	plan := links.PlanTargets(
		installed.Latest(versions.Stable),
		installed.Latest(versions.Prerelease),
		r.current[links.BetaLink],
	)
	r.report.Plan = plan
	if stable := installed.Latest(versions.Stable); plan.Deduplicated(stable) {
		r.logger.Info().
			Stringer("version", stable).
			Msg("Newest release is the beta link's build, leaving stable link as is")
	}

	for _, name := range links.Names {
		target := plan.Target(name)
		changed, err := applier.Apply(name, target)
		if err != nil {
			return err
		}
		if changed {
			r.report.Linked[name] = *target
			r.current[name] = target
		}
	}
	return nil
}

func (r *run) retain() error {
	var protected []versions.Version
	for _, name := range links.Names {
		if v := r.current[name]; v != nil {
			protected = append(protected, *v)
		}
	}

	doomed, err := retention.VersionsToDelete(r.catalog.Set(), r.opts.Policy, r.outcome, protected)
	if err != nil {
		return err
	}
	r.report.PendingDeletions = doomed

	if r.opts.SkipDelete {
		if len(doomed) > 0 {
			r.logger.Info().Int("count", len(doomed)).Msg("Skipping deletion of old versions")
		}
		return nil
	}

	for _, v := range doomed {
		r.logger.Info().Stringer("version", v).Bool("dryRun", r.opts.DryRun).Msg("Uninstalling")
		if !r.opts.DryRun {
			if err := r.checkUnlinked(v); err != nil {
				return err
			}
			if err := r.toolchains.Uninstall(r.ctx, v); err != nil {
				return err
			}
		}
		r.report.Deleted = append(r.report.Deleted, v)
	}
	return nil
}

// checkUnlinked reads the links back from disk right before v is
// uninstalled. A link may have been repointed during an earlier uninstall.
func (r *run) checkUnlinked(v versions.Version) error {
	applier := links.NewApplier(r.links, r.catalog, true)
	for _, name := range links.Names {
		target, err := applier.Current(name)
		if err != nil {
			return err
		}
		if target != nil && target.Equal(v) {
			return errors.Newf(errors.ErrInvariant, "refusing to delete %s: %s points at it", v, name).
				WithDetail("version", v.String()).
				WithDetail("link", string(name))
		}
	}
	return nil
}
