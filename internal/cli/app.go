package cli

import (
	"github.com/arthur-debert/xcupdate/pkg/config"
	"github.com/arthur-debert/xcupdate/pkg/filesystem"
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/paths"
	"github.com/arthur-debert/xcupdate/pkg/types"
	"github.com/arthur-debert/xcupdate/pkg/ui"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is what a command works with once flags and configuration are
// resolved.
type app struct {
	cfg      *config.Config
	paths    paths.Paths
	fs       types.FS
	client   *xcodes.Client
	links    *links.Store
	renderer ui.Renderer
	logger   zerolog.Logger
}

func newApp(cmd *cobra.Command, deps Dependencies, flags *globalFlags, overrides map[string]interface{}) (*app, error) {
	renderer, err := ui.ForFlag(flags.format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:      flags.configPath,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	fsys := deps.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &app{
		cfg:      cfg,
		paths:    p,
		fs:       fsys,
		client:   xcodes.New(deps.Runner, cfg.XcodesOptions()),
		links:    links.NewStore(fsys, cfg.Links.Directory, cfg.LinkNames()),
		renderer: renderer,
		logger:   logging.GetLogger("cli." + cmd.Name()),
	}, nil
}
