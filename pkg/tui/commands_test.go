// pkg/tui/commands_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test palette suggestion matching, argument-aware completion for
// use/theme, and the Enter resolution between typed text and the selection

package tui

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyInputListsAllCommands(t *testing.T) {
	got := suggest("", nil, nil)

	want := make([]string, len(commandNames))
	copy(want, commandNames)
	sort.Strings(want)

	assert.Equal(t, want, got)
}

func TestSuggestMatchesByPrefixOrSubstring(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"prefix", "pr", []string{"preview", "profiles"}},
		{"substring", "ort", []string{"export"}},
		{"full_name", "quit", []string{"quit"}},
		{"theme_family", "theme", []string{"theme", "themes"}},
		{"no_match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggest(tt.input, nil, nil))
		})
	}
}

func TestSuggestUseCompletesProfileNames(t *testing.T) {
	profiles := []string{"work", "default", "scratch"}

	got := suggest("use ", profiles, nil)
	assert.Equal(t, []string{"use default", "use scratch", "use work"}, got)

	got = suggest("use wo", profiles, nil)
	assert.Equal(t, []string{"use work"}, got)

	assert.Nil(t, suggest("use nope", profiles, nil))
}

func TestSuggestThemeCompletesPresetNames(t *testing.T) {
	presets := []string{"dracula", "light", "solarized"}

	got := suggest("theme ", nil, presets)
	assert.Equal(t, []string{"theme dracula", "theme light", "theme solarized"}, got)

	got = suggest("theme so", nil, presets)
	assert.Equal(t, []string{"theme solarized"}, got)
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedup([]string{"a", "a", "b"}))
	assert.Equal(t, []string{"a"}, dedup([]string{"a", "a", "a"}))
	assert.Empty(t, dedup(nil))
}

func TestPickCommand(t *testing.T) {
	tests := []struct {
		name        string
		typed       string
		suggestions []string
		selected    int
		want        string
	}{
		{"empty_typed_runs_selection", "", []string{"profiles", "vars"}, 1, "vars"},
		{"exact_typed_wins_over_selection", "vars", []string{"profiles", "vars"}, 0, "vars"},
		{"no_suggestions_runs_typed", "use gone", nil, 0, "use gone"},
		{"partial_typed_runs_selection", "pro", []string{"preview", "profiles"}, 1, "profiles"},
		{"out_of_range_selection_falls_back_to_typed", "pro", []string{"profiles"}, 5, "pro"},
		{"typed_is_trimmed", "  quit  ", []string{"quit"}, 0, "quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickCommand(tt.typed, tt.suggestions, tt.selected)
			require.Equal(t, tt.want, got)
		})
	}
}
