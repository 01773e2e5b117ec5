package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/xcupdate/internal/version"
	"github.com/arthur-debert/xcupdate/pkg/cobrax/topics"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/types"
	"github.com/arthur-debert/xcupdate/pkg/ui"
	"github.com/arthur-debert/xcupdate/pkg/ui/styles"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// EnvStyles names a YAML file that replaces the built-in terminal styles.
const EnvStyles = "XCUPDATE_STYLES"

//go:embed topics
var topicFiles embed.FS

// Dependencies are the points where commands reach outside the process.
// Zero values use the real implementations.
type Dependencies struct {
	// Runner executes xcodes.
	Runner xcodes.Runner
	// FS holds the links, the state file and written configuration.
	FS types.FS
	// Preflight checks the host before an update.
	Preflight func(binary string) ([]string, error)
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbosity  int
	dryRun     bool
	format     string
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(Dependencies{})
}

func newRootCmd(deps Dependencies) *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "xcupdate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if path := os.Getenv(EnvStyles); path != "" {
				if err := styles.LoadStyles(path); err != nil {
					log.Warn().Err(err).Str("path", path).Msg("Failed to load styles, using defaults")
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newUpdateCmd(deps, flags))
	rootCmd.AddCommand(newPlanCmd(deps, flags))
	rootCmd.AddCommand(newListCmd(deps, flags))
	rootCmd.AddCommand(newStatusCmd(deps, flags))
	rootCmd.AddCommand(newConfigCmd(deps, flags))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer(flags, rootCmd.OutOrStdout),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Failed to load help topics")
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			c.GroupID = "misc"
		}
	}

	return rootCmd
}

// topicRenderer styles markdown topics for the --format in effect when help
// runs: glamour colors on a terminal, notty for text and json.
func topicRenderer(flags *globalFlags, out func() io.Writer) topics.Renderer {
	return topics.RendererFunc(func(content, ext string) string {
		style := topics.StyleNoTTY
		if format, err := ui.ParseFormat(flags.format); err == nil && ui.Resolve(format, out()).Styled() {
			style = topics.StyleAuto
		}
		return topics.NewMarkdownRenderer(style).Render(content, ext)
	})
}

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}
