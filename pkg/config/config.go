// Package config loads and persists benv's configuration file.
// Configuration is layered: built-in defaults, then the TOML config file,
// then BENV_-prefixed environment variables. Writes go through an atomic
// temp-file-and-rename so a crash never leaves a half-written config.
package config

// ThemeConfig selects a color preset and optional per-slot overrides.
// Override values accept #rgb / #rrggbb hex or oklch(L% C H) strings.
type ThemeConfig struct {
	Preset     string `koanf:"preset" toml:"preset"`
	Background string `koanf:"background" toml:"background,omitempty"`
	Surface    string `koanf:"surface" toml:"surface,omitempty"`
	Text       string `koanf:"text" toml:"text,omitempty"`
	Muted      string `koanf:"muted" toml:"muted,omitempty"`
	Accent     string `koanf:"accent" toml:"accent,omitempty"`
	Border     string `koanf:"border" toml:"border,omitempty"`
	Highlight  string `koanf:"highlight" toml:"highlight,omitempty"`
	Error      string `koanf:"error" toml:"error,omitempty"`
}

// Config is the full configuration tree
type Config struct {
	Theme ThemeConfig `koanf:"theme" toml:"theme"`
}

// DefaultPreset is the theme used when no config file exists
const DefaultPreset = "dracula"

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Preset: DefaultPreset,
		},
	}
}

// Overrides returns the per-slot color overrides that are set, keyed by
// slot name.
func (t ThemeConfig) Overrides() map[string]string {
	slots := map[string]string{
		"background": t.Background,
		"surface":    t.Surface,
		"text":       t.Text,
		"muted":      t.Muted,
		"accent":     t.Accent,
		"border":     t.Border,
		"highlight":  t.Highlight,
		"error":      t.Error,
	}
	out := make(map[string]string)
	for slot, value := range slots {
		if value != "" {
			out[slot] = value
		}
	}
	return out
}
