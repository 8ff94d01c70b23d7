// pkg/theme/theme_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test preset resolution, override handling, and fallback policy

package theme_test

import (
	"testing"

	"benv/pkg/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownPresets(t *testing.T) {
	tests := []struct {
		name       string
		preset     string
		background lipgloss.Color
	}{
		{name: "dracula", preset: "dracula", background: "#282a36"},
		{name: "solarized", preset: "solarized", background: "#002b36"},
		{name: "light", preset: "light", background: "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := theme.Resolve(tt.preset, nil)
			assert.Equal(t, tt.preset, th.Name)
			assert.Equal(t, tt.background, th.Colors.Background)
		})
	}
}

func TestResolveUnknownPresetFallsBackToDefault(t *testing.T) {
	th := theme.Resolve("no-such-preset", nil)

	assert.Equal(t, "dracula", th.Name)
	assert.Equal(t, lipgloss.Color("#282a36"), th.Colors.Background)
}

func TestResolveEmptyPresetUsesDefault(t *testing.T) {
	assert.Equal(t, "dracula", theme.Resolve("", nil).Name)
	assert.Equal(t, "dracula", theme.Default().Name)
}

func TestResolveAppliesOverrides(t *testing.T) {
	th := theme.Resolve("dracula", map[string]string{
		"accent": "#123456",
		"error":  "oklch(50% 0 0)",
	})

	assert.Equal(t, lipgloss.Color("#123456"), th.Colors.Accent)
	assert.Equal(t, lipgloss.Color("#636363"), th.Colors.Error)
	// Untouched slots keep the preset value.
	assert.Equal(t, lipgloss.Color("#f8f8f2"), th.Colors.Text)
}

func TestResolveBadOverrideKeepsPresetValue(t *testing.T) {
	th := theme.Resolve("dracula", map[string]string{
		"accent": "not a color",
	})

	assert.Equal(t, lipgloss.Color("#bd93f9"), th.Colors.Accent)
}

func TestPresetsListsShippedThemes(t *testing.T) {
	names := theme.Presets()

	require.GreaterOrEqual(t, len(names), 3)
	assert.Contains(t, names, "dracula")
	assert.Contains(t, names, "light")
	assert.Contains(t, names, "solarized")
	assert.IsIncreasing(t, names)
}

func TestHas(t *testing.T) {
	assert.True(t, theme.Has("dracula"))
	assert.True(t, theme.Has(" solarized "))
	assert.False(t, theme.Has("nord"))
}

func TestStylesCarryPaletteColors(t *testing.T) {
	th := theme.Resolve("dracula", nil)

	assert.Equal(t, lipgloss.Color("#f8f8f2"), th.Text().GetForeground())
	assert.Equal(t, lipgloss.Color("#6272a4"), th.DimText().GetForeground())
	assert.Equal(t, lipgloss.Color("#ff79c6"), th.ListHighlight().GetBackground())
	assert.True(t, th.Title().GetBold())
	assert.Equal(t, lipgloss.Color("#343746"), th.Surface().GetBackground())
	assert.Equal(t, lipgloss.Color("#ff5555"), th.ErrorText().GetForeground())
}
