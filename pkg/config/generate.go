package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults with every value commented
// out, ready to be saved as a user configuration file.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines, comments and section headers as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

type xcodesView struct {
	Binary            string `toml:"binary"`
	Timeout           string `toml:"timeout"`
	Directory         string `toml:"directory"`
	ExperimentalUnxip bool   `toml:"experimental_unxip"`
}

type configView struct {
	Retention Retention  `toml:"retention"`
	Links     Links      `toml:"links"`
	Xcodes    xcodesView `toml:"xcodes"`
	Update    Update     `toml:"update"`
}

// TOML encodes the configuration in the user file format.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(configView{
		Retention: c.Retention,
		Links:     c.Links,
		Xcodes: xcodesView{
			Binary:            c.Xcodes.Binary,
			Timeout:           c.Xcodes.Timeout.String(),
			Directory:         c.Xcodes.Directory,
			ExperimentalUnxip: c.Xcodes.ExperimentalUnxip,
		},
		Update: c.Update,
	})
}

// WriteDefault writes the commented defaults to path, refusing to replace
// an existing file.
func WriteDefault(fsys types.FS, path string, force bool) error {
	if !force {
		if _, err := fsys.Stat(path); err == nil {
			return errors.Newf(errors.ErrConfigLoad, "%s already exists", path).
				WithDetail("path", path)
		}
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}
