package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/xcupdate/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for xcupdate
	EnvConfigDir = "XCUPDATE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for xcupdate
	EnvStateDir = "XCUPDATE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the subdirectory used inside each XDG directory
	AppDirName = "xcupdate"

	// ConfigFileTOML is the preferred user configuration file
	ConfigFileTOML = "config.toml"

	// ConfigFileYAML is accepted when no TOML file exists
	ConfigFileYAML = "config.yaml"

	// LastRunFile records the outcome of the previous update
	LastRunFile = "last-run.toml"

	// LogFileName is the name of the log file
	LogFileName = "xcupdate.log"
)

// Paths gives the locations of xcupdate's own files.
type Paths interface {
	ConfigDir() string
	StateDir() string
	// ConfigFile returns the user configuration file that exists, preferring
	// TOML, or the TOML location when neither exists.
	ConfigFile() string
	LastRunPath() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New resolves the directories, honouring the environment overrides.
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = ExpandHome(dir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// XDG_STATE_HOME is read directly so a value set after start-up, as
	// tests do, is still honoured.
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.xdgState = ExpandHome(dir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.xdgState = filepath.Join(stateHome, AppDirName)
	} else {
		home, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		p.xdgState = filepath.Join(home, ".local", "state", AppDirName)
	}

	return p, nil
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) ConfigFile() string {
	toml := filepath.Join(p.xdgConfig, ConfigFileTOML)
	if _, err := os.Stat(toml); err == nil {
		return toml
	}
	yaml := filepath.Join(p.xdgConfig, ConfigFileYAML)
	if _, err := os.Stat(yaml); err == nil {
		return yaml
	}
	return toml
}

func (p *paths) LastRunPath() string {
	return filepath.Join(p.xdgState, LastRunFile)
}

// LogFilePath returns the path to the xcupdate log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to get home directory")
	}
	return homeDir, nil
}
