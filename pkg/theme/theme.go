// Package theme resolves the color theme used by the TUI and styled CLI
// output. Presets ship as embedded YAML; the config file picks a preset
// and may override individual slots. Resolution never fails: a bad
// preset name or color string logs a warning and degrades to defaults,
// so theming can never keep the program from starting.
package theme

import (
	_ "embed"
	"sort"
	"strings"

	"benv/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger("theme")

// defaultPreset matches config.DefaultPreset.
const defaultPreset = "dracula"

// palette maps slot name to a color string, pre-parse.
type palette map[string]string

//go:embed presets.yaml
var embeddedPresets []byte

var presets map[string]palette

// fallbackPalette mirrors the dracula entry in presets.yaml so slot
// resolution has a compiled-in floor even if the embedded data is bad.
var fallbackPalette = palette{
	"background": "#282a36",
	"surface":    "#343746",
	"text":       "#f8f8f2",
	"muted":      "#6272a4",
	"accent":     "#bd93f9",
	"border":     "#44475a",
	"highlight":  "#ff79c6",
	"error":      "#ff5555",
}

func init() {
	if err := yaml.Unmarshal(embeddedPresets, &presets); err != nil || len(presets) == 0 {
		presets = map[string]palette{defaultPreset: fallbackPalette}
	}
}

// Colors is a fully parsed palette.
type Colors struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Error      lipgloss.Color
}

// Theme is a resolved preset: a name plus its parsed colors.
type Theme struct {
	Name   string
	Colors Colors
}

// Resolve builds a Theme from a preset name and optional per-slot
// override strings. Unknown presets and unparseable colors log a warning
// and fall back, never error.
func Resolve(preset string, overrides map[string]string) *Theme {
	name := strings.TrimSpace(preset)
	if name == "" {
		name = defaultPreset
	}

	pal, ok := presets[name]
	if !ok {
		log.Warn().Str("preset", name).Msg("Unknown theme preset, using default")
		name = defaultPreset
		if pal, ok = presets[name]; !ok {
			pal = fallbackPalette
		}
	}

	return &Theme{Name: name, Colors: resolveColors(pal, overrides)}
}

// Default returns the default theme with no overrides.
func Default() *Theme {
	return Resolve("", nil)
}

// Presets returns the available preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a preset with the given name exists.
func Has(name string) bool {
	_, ok := presets[strings.TrimSpace(name)]
	return ok
}

func resolveColors(pal palette, overrides map[string]string) Colors {
	slot := func(name string) lipgloss.Color {
		if value, ok := overrides[name]; ok {
			color, err := ParseColor(value)
			if err == nil {
				return color
			}
			log.Warn().Err(err).Str("slot", name).Str("value", value).
				Msg("Bad color override, using preset value")
		}
		if value, ok := pal[name]; ok {
			color, err := ParseColor(value)
			if err == nil {
				return color
			}
			log.Warn().Err(err).Str("slot", name).Str("value", value).
				Msg("Bad preset color, using built-in value")
		}
		color, err := ParseColor(fallbackPalette[name])
		if err != nil {
			return lipgloss.Color("#000000")
		}
		return color
	}

	return Colors{
		Background: slot("background"),
		Surface:    slot("surface"),
		Text:       slot("text"),
		Muted:      slot("muted"),
		Accent:     slot("accent"),
		Border:     slot("border"),
		Highlight:  slot("highlight"),
		Error:      slot("error"),
	}
}

// Text is the base style for readable content.
func (t *Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Text).Background(t.Colors.Background)
}

// DimText renders secondary information such as counts and hints.
func (t *Theme) DimText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Muted).Background(t.Colors.Background)
}

// ListHighlight marks the selected row of a list.
func (t *Theme) ListHighlight() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Background).Background(t.Colors.Highlight)
}

// Title renders view titles and section headers.
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Accent).Background(t.Colors.Background).Bold(true)
}

// Frame renders pane borders.
func (t *Theme) Frame() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Border).Background(t.Colors.Background)
}

// Surface renders elevated panels such as modal dialogs.
func (t *Theme) Surface() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Text).Background(t.Colors.Surface)
}

// ErrorText renders status-line errors.
func (t *Theme) ErrorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Colors.Error).Background(t.Colors.Background).Bold(true)
}
