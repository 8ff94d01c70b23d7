// pkg/ui/format_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Environment, pipes
// PURPOSE: Test format parsing and terminal detection

package ui_test

import (
	"os"
	"testing"

	"benv/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{name: "auto_format", format: ui.FormatAuto, expected: "auto"},
		{name: "terminal_format", format: ui.FormatTerminal, expected: "term"},
		{name: "text_format", format: ui.FormatText, expected: "text"},
		{name: "json_format", format: ui.FormatJSON, expected: "json"},
		{name: "unknown_format", format: ui.Format(999), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{name: "parse_auto", input: "auto", expected: ui.FormatAuto},
		{name: "parse_empty_as_auto", input: "", expected: ui.FormatAuto},
		{name: "parse_term", input: "term", expected: ui.FormatTerminal},
		{name: "parse_terminal_alias", input: "terminal", expected: ui.FormatTerminal},
		{name: "parse_text", input: "text", expected: ui.FormatText},
		{name: "parse_plain_alias", input: "plain", expected: ui.FormatText},
		{name: "parse_json", input: "json", expected: ui.FormatJSON},
		{name: "parse_uppercase", input: "JSON", expected: ui.FormatJSON},
		{name: "parse_unknown", input: "yaml", expected: ui.FormatAuto, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormatNoColorFlagWins(t *testing.T) {
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout, true))
}

func TestDetectFormatHonorsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout, false))
}

func TestDetectFormatPipeIsText(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(w, false))
}
