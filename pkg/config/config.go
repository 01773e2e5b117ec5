package config

import (
	"time"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/links"
	"github.com/arthur-debert/xcupdate/pkg/retention"
	"github.com/arthur-debert/xcupdate/pkg/update"
	"github.com/arthur-debert/xcupdate/pkg/xcodes"
)

// Config is the effective configuration.
type Config struct {
	Retention Retention `koanf:"retention" toml:"retention"`
	Links     Links     `koanf:"links" toml:"links"`
	Xcodes    Xcodes    `koanf:"xcodes" toml:"xcodes"`
	Update    Update    `koanf:"update" toml:"update"`
}

type Retention struct {
	Stable     int `koanf:"stable" toml:"stable"`
	Prerelease int `koanf:"prerelease" toml:"prerelease"`
}

type Links struct {
	Directory string `koanf:"directory" toml:"directory"`
	Stable    string `koanf:"stable" toml:"stable"`
	Beta      string `koanf:"beta" toml:"beta"`
}

type Xcodes struct {
	Binary            string        `koanf:"binary" toml:"binary"`
	Timeout           time.Duration `koanf:"timeout" toml:"-"`
	Directory         string        `koanf:"directory" toml:"directory"`
	ExperimentalUnxip bool          `koanf:"experimental_unxip" toml:"experimental_unxip"`
}

type Update struct {
	SkipDelete        bool `koanf:"skip_delete" toml:"skip_delete"`
	InstallPrerelease bool `koanf:"install_prerelease" toml:"install_prerelease"`
}

// Validate checks the values no source can be trusted to get right.
func (c *Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.Links.Directory == "" {
		return invalid("links.directory", "link directory must be set")
	}
	if c.Links.Stable == "" || c.Links.Beta == "" {
		return invalid("links", "stable and beta link names must be set")
	}
	if c.Links.Stable == c.Links.Beta {
		return invalid("links", "stable and beta links must differ, both are %q", c.Links.Stable)
	}
	if c.Xcodes.Binary == "" {
		return invalid("xcodes.binary", "xcodes binary must be set")
	}
	if c.Xcodes.Timeout < 0 {
		return invalid("xcodes.timeout", "timeout must not be negative, got %s", c.Xcodes.Timeout)
	}
	return nil
}

func invalid(key, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, format, args...).WithDetail("key", key)
}

// Policy returns the retention policy.
func (c *Config) Policy() retention.Policy {
	return retention.Policy{
		KeepStable:     c.Retention.Stable,
		KeepPrerelease: c.Retention.Prerelease,
	}
}

// LinkNames maps each managed link to its file name.
func (c *Config) LinkNames() map[links.Name]string {
	return map[links.Name]string{
		links.StableLink: c.Links.Stable,
		links.BetaLink:   c.Links.Beta,
	}
}

// XcodesOptions returns the xcodes client settings.
func (c *Config) XcodesOptions() xcodes.Options {
	return xcodes.Options{
		Binary:            c.Xcodes.Binary,
		Timeout:           c.Xcodes.Timeout,
		Directory:         c.Xcodes.Directory,
		ExperimentalUnxip: c.Xcodes.ExperimentalUnxip,
	}
}

// UpdateOptions returns the options of an update run.
func (c *Config) UpdateOptions(dryRun bool) update.Options {
	return update.Options{
		Policy:            c.Policy(),
		SkipDelete:        c.Update.SkipDelete,
		DryRun:            dryRun,
		InstallPrerelease: c.Update.InstallPrerelease,
	}
}
