package config

import (
	"os"
	"strings"

	"benv/pkg/errors"
	"benv/pkg/logging"
	"benv/pkg/paths"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var log = logging.GetLogger("config")

// EnvPrefix is the prefix for configuration environment variables.
// BENV_THEME_PRESET=light overrides [theme] preset.
const EnvPrefix = "BENV_"

// Load reads the layered configuration: defaults, then the config file if
// present, then BENV_ environment variables. On error the returned Config
// is never nil; callers that treat config as best-effort can log the error
// and keep the defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := Default()
	err := k.Load(confmap.Provider(map[string]interface{}{
		"theme.preset": defaults.Theme.Preset,
	}, "."), nil)
	if err != nil {
		return Default(), errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Config file, when it exists
	configPath := paths.ConfigFile()
	if _, statErr := os.Stat(configPath); statErr == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return Default(), errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", configPath)
		}
		log.Debug().Str("path", configPath).Msg("Loaded config file")
	}

	// 3. Environment overrides
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return Default(), errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return Default(), errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
