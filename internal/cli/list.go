package cli

import (
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/ui/display"
	"github.com/arthur-debert/xcupdate/pkg/update"
	"github.com/arthur-debert/xcupdate/pkg/versions"
	"github.com/spf13/cobra"
)

func newListCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, deps, flags, nil)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			raw, err := a.client.ListAvailable(ctx)
			if err != nil {
				return err
			}
			found, err := a.client.ListInstalled(ctx)
			if err != nil {
				return err
			}

			var warnings []string
			available, skipped := versions.ParseAll(raw)
			for _, err := range skipped {
				warnings = append(warnings, update.SkipWarning(err))
			}
			catalog, unreadable := update.CatalogOf(found)
			for _, inst := range found {
				if err, ok := unreadable[inst.Identifier]; ok {
					warnings = append(warnings, update.SkipWarning(err))
				}
			}

			var installed []display.Installed
			for _, v := range catalog.Set().All() {
				path, _ := catalog.PathOf(v)
				installed = append(installed, display.Installed{Version: v, Path: path})
			}

			linked := map[string]versions.Version{}
			names := a.cfg.LinkNames()
			applier := links.NewApplier(a.links, catalog, true)
			for _, name := range links.Names {
				v, err := applier.Current(name)
				if err != nil {
					warnings = append(warnings, err.Error())
					continue
				}
				if v != nil {
					linked[names[name]] = *v
				}
			}

			result := display.BuildList(available, installed, linked)
			result.Warnings = warnings
			a.logger.Info().
				Int("available", len(available)).
				Int("installed", len(installed)).
				Msg("Listed versions")
			return a.renderer.RenderResult(result)
		},
	}
}
