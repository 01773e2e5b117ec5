package cli

import (
	"github.com/arthur-debert/xcupdate/internal/version"
	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/filesystem"
	"github.com/arthur-debert/xcupdate/pkg/state"
	"github.com/arthur-debert/xcupdate/pkg/ui/display"
	"github.com/arthur-debert/xcupdate/pkg/update"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/spf13/cobra"
)

func newUpdateCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		Example: MsgUpdateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, deps, flags, flags.dryRun)
		},
	}
	addRetentionFlags(cmd)
	return cmd
}

func newPlanCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, deps, flags, true)
		},
	}
	addRetentionFlags(cmd)
	return cmd
}

func addRetentionFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("keep-stable", "r", 1, MsgFlagKeepStable)
	cmd.Flags().IntP("keep-prerelease", "b", 1, MsgFlagKeepPrerelease)
	cmd.Flags().Bool("skip-delete", false, MsgFlagSkipDelete)
}

// retentionOverrides returns the configuration keys set by flags the user
// actually passed, so unset flags do not mask the configuration file.
func retentionOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("keep-stable") {
		v, _ := cmd.Flags().GetInt("keep-stable")
		overrides["retention.stable"] = v
	}
	if cmd.Flags().Changed("keep-prerelease") {
		v, _ := cmd.Flags().GetInt("keep-prerelease")
		overrides["retention.prerelease"] = v
	}
	if cmd.Flags().Changed("skip-delete") {
		v, _ := cmd.Flags().GetBool("skip-delete")
		overrides["update.skip_delete"] = v
	}
	return overrides
}

func runUpdate(cmd *cobra.Command, deps Dependencies, flags *globalFlags, dryRun bool) error {
	a, err := newApp(cmd, deps, flags, retentionOverrides(cmd))
	if err != nil {
		return err
	}

	preflight := deps.Preflight
	if preflight == nil {
		preflight = xcodes.Preflight
	}
	warnings, err := preflight(a.client.Binary())
	if err != nil {
		return err
	}
	for _, w := range warnings {
		a.logger.Warn().Msg(w)
	}

	opts := a.cfg.UpdateOptions(dryRun)
	a.logger.Info().
		Int("keepStable", opts.Policy.KeepStable).
		Int("keepPrerelease", opts.Policy.KeepPrerelease).
		Bool("skipDelete", opts.SkipDelete).
		Bool("dryRun", opts.DryRun).
		Str("linkDir", a.links.Dir()).
		Msg("Starting update")

	report := update.New(a.client, a.links).Run(cmd.Context(), opts)
	report.Warnings = append(warnings, report.Warnings...)

	// Dry runs go through the same encoding but never reach the disk.
	stateFS := a.fs
	if dryRun {
		stateFS = filesystem.NewMemory()
	}
	store := state.NewStore(stateFS, a.paths.LastRunPath())
	if err := store.Save(state.FromReport(report, version.Version)); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to record the run")
		report.Warnings = append(report.Warnings, err.Error())
	}

	if err := a.renderer.RenderResult(&display.UpdateResult{Command: cmd.Name(), Report: report}); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render report")
	}

	if report.Failed() {
		return &ExitError{Code: 1, Err: report.Err(), Reported: true}
	}
	return nil
}
