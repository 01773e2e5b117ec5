package cli

import (
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/state"
	"github.com/arthur-debert/xcupdate/pkg/ui/display"
	"github.com/arthur-debert/xcupdate/pkg/update"
	"github.com/spf13/cobra"
)

func newStatusCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, deps, flags, nil)
			if err != nil {
				return err
			}

			// Without the installed list links are still shown, only
			// their versions stay unknown.
			var catalog *update.Catalog
			if found, err := a.client.ListInstalled(cmd.Context()); err != nil {
				a.logger.Warn().Err(err).Msg("Cannot list installed versions")
			} else {
				catalog, _ = update.CatalogOf(found)
			}

			result := &display.StatusResult{}
			for _, name := range links.Names {
				result.Links = append(result.Links, linkStatus(a, catalog, name))
			}

			rec, err := state.NewStore(a.fs, a.paths.LastRunPath()).Load()
			if err != nil {
				return err
			}
			result.LastRun = rec

			return a.renderer.RenderResult(result)
		},
	}
}

func linkStatus(a *app, catalog *update.Catalog, name links.Name) display.LinkStatus {
	status := display.LinkStatus{
		Name: string(name),
		Path: a.links.Path(name),
	}

	target, err := a.links.Read(name)
	switch {
	case err != nil:
		status.Problem = err.Error()
		return status
	case target == "":
		status.Problem = "missing"
		return status
	}
	status.Target = target

	if catalog == nil {
		return status
	}
	if v, ok := catalog.VersionAt(target); ok {
		status.Version = v.String()
	} else {
		status.Problem = "not an installed Xcode version"
	}
	return status
}
