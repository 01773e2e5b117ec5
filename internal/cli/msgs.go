package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep Xcode toolchains installed, linked and pruned"
	MsgUpdateShort     = "Install, link and prune Xcode versions"
	MsgPlanShort       = "Show what update would do without changing anything"
	MsgPlanLong        = "Plan computes the full update (installs, links and deletions) and prints it. Nothing is installed, linked or removed."
	MsgListShort       = "List available and installed Xcode versions"
	MsgListLong        = "List shows every version xcodes knows about, grouped by track, with the installed ones and the versions the links point at."
	MsgStatusShort     = "Show link targets and the last update"
	MsgConfigShort     = "Inspect and create the configuration file"
	MsgConfigInitShort = "Write a commented configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigPathShort = "Print the configuration file path"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten   = "Wrote configuration to %s"
	MsgPreflightFailed = "preflight check failed"

	// Version output
	MsgVersionFormat = "xcupdate version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun         = "Compute the plan without installing, linking or removing anything"
	MsgFlagFormat         = "Output format: auto, term, text or json"
	MsgFlagConfig         = "Configuration file (default $XDG_CONFIG_HOME/xcupdate/config.toml)"
	MsgFlagKeepStable     = "Number of releases to keep installed"
	MsgFlagKeepPrerelease = "Number of prereleases (betas, release candidates) to keep installed"
	MsgFlagSkipDelete     = "Report old versions instead of uninstalling them"
	MsgFlagForce          = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/update-example.txt
	msgUpdateExampleRaw string
	MsgUpdateExample    = strings.TrimRight(msgUpdateExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
