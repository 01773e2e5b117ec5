package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xcupdate/pkg/errors"
	"github.com/arthur-debert/xcupdate/pkg/logging"
	"github.com/arthur-debert/xcupdate/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment variable read as configuration.
const EnvPrefix = "XCUPDATE_"

var sections = map[string]bool{
	"retention": true,
	"links":     true,
	"xcodes":    true,
	"update":    true,
}

// LoadOptions selects the user file and the flag overrides.
type LoadOptions struct {
	// Path is an explicit configuration file. It must exist when set.
	Path string
	// Overrides are dotted keys set from the command line, e.g.
	// "retention.stable".
	Overrides map[string]interface{}
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User file
	path, explicit, err := userConfigPath(opts.Path)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load configuration from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded configuration file")
	} else if explicit {
		return nil, errors.Wrapf(statErr, errors.ErrConfigLoad, "configuration file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply command line overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	cfg.Links.Directory = paths.ExpandHome(cfg.Links.Directory)
	cfg.Xcodes.Directory = paths.ExpandHome(cfg.Xcodes.Directory)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func userConfigPath(explicit string) (string, bool, error) {
	if explicit != "" {
		return paths.ExpandHome(explicit), true, nil
	}
	p, err := paths.New()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrConfigLoad, "cannot locate configuration directory")
	}
	return p.ConfigFile(), false, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps XCUPDATE_XCODES_EXPERIMENTAL_UNXIP to
// xcodes.experimental_unxip. Variables outside the known sections, such as
// XCUPDATE_CONFIG_DIR, are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || !sections[section] {
		return ""
	}
	return section + "." + rest
}
