package cli

import (
	"fmt"

	"github.com/arthur-debert/xcupdate/pkg/config"
	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/filesystem"
	"github.com/arthur-debert/xcupdate/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigInitCmd(deps, flags))
	cmd.AddCommand(newConfigShowCmd(deps, flags))
	cmd.AddCommand(newConfigPathCmd(flags))
	return cmd
}

// configFile is the file `config` subcommands read or write.
func configFile(flags *globalFlags) (string, error) {
	if flags.configPath != "" {
		return paths.ExpandHome(flags.configPath), nil
	}
	p, err := paths.New()
	if err != nil {
		return "", err
	}
	return p.ConfigFile(), nil
}

func newConfigInitCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFile(flags)
			if err != nil {
				return err
			}

			fsys := deps.FS
			if fsys == nil {
				fsys = filesystem.NewOS()
			}
			if flags.dryRun {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}
			if err := config.WriteDefault(fsys, path, force); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", path)
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newConfigShowCmd(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, deps, flags, nil)
			if err != nil {
				return err
			}
			out, err := a.cfg.TOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newConfigPathCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFile(flags)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
