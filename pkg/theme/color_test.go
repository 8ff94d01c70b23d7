// pkg/theme/color_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test hex and oklch() color parsing, including gamut mapping

package theme_test

import (
	"strconv"
	"strings"
	"testing"

	"benv/pkg/errors"
	"benv/pkg/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected lipgloss.Color
	}{
		{name: "six_digit", input: "#282a36", expected: "#282a36"},
		{name: "six_digit_uppercase", input: "#FF79C6", expected: "#ff79c6"},
		{name: "three_digit_expands", input: "#f8c", expected: "#ff88cc"},
		{name: "surrounding_whitespace", input: "  #ff5555  ", expected: "#ff5555"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := theme.ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseColorOklch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected lipgloss.Color
	}{
		// Achromatic values hit the transfer function exactly.
		{name: "white", input: "oklch(100% 0 0)", expected: "#ffffff"},
		{name: "black", input: "oklch(0% 0 0)", expected: "#000000"},
		{name: "mid_gray", input: "oklch(50% 0 0)", expected: "#636363"},
		{name: "lightness_without_percent", input: "oklch(0.5 0 0)", expected: "#636363"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := theme.ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseColorGamutMapping(t *testing.T) {
	// Far outside sRGB; must come back as a valid color, not clip garbage.
	got, err := theme.ParseColor("oklch(70% 0.5 150)")
	require.NoError(t, err)

	require.Len(t, string(got), 7)
	require.True(t, strings.HasPrefix(string(got), "#"))

	// Hue is preserved: a saturated green maps to a green, with the green
	// channel dominating.
	r, g, b := hexChannels(t, got)
	assert.Greater(t, g, r)
	assert.Greater(t, g, b)
}

func hexChannels(t *testing.T, c lipgloss.Color) (int64, int64, int64) {
	t.Helper()
	s := string(c)
	require.Len(t, s, 7)

	r, err := strconv.ParseInt(s[1:3], 16, 32)
	require.NoError(t, err)
	g, err := strconv.ParseInt(s[3:5], 16, 32)
	require.NoError(t, err)
	b, err := strconv.ParseInt(s[5:7], 16, 32)
	require.NoError(t, err)
	return r, g, b
}

func TestParseColorErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "bare_word", input: "rebeccapurple"},
		{name: "bad_hex_length", input: "#ffff"},
		{name: "bad_hex_digits", input: "#zzzzzz"},
		{name: "oklch_missing_parts", input: "oklch(50%)"},
		{name: "oklch_bad_number", input: "oklch(50% abc 10)"},
		{name: "rgb_function", input: "rgb(1, 2, 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.ParseColor(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse))
		})
	}
}
