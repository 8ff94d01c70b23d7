package config

import (
	"os"

	"benv/pkg/errors"
	"benv/pkg/paths"

	toml "github.com/pelletier/go-toml/v2"
)

// Save writes cfg to the config file. The write is atomic: the content
// lands in a temp file in the same directory which is then renamed over
// the target, so readers never observe a partial file.
func Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to marshal config")
	}

	configDir := paths.ConfigDir()
	if err := paths.Ensure(configDir); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave,
			"failed to create config directory %s", configDir)
	}

	tmp, err := os.CreateTemp(configDir, ".config-*.toml")
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to create temp config file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrConfigSave, "failed to write temp config file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrConfigSave, "failed to close temp config file")
	}

	configPath := paths.ConfigFile()
	if err := os.Rename(tmpName, configPath); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrConfigSave,
			"failed to move config into place at %s", configPath)
	}

	log.Debug().Str("path", configPath).Msg("Saved config file")
	return nil
}
