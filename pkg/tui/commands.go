package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"benv/pkg/config"
	"benv/pkg/theme"
)

// commandNames is the palette vocabulary. `use` and `theme` take an
// argument and get argument-aware completion in suggest.
var commandNames = []string{
	"quit",
	"profiles",
	"vars",
	"parts",
	"items",
	"defs",
	"preview",
	"export",
	"use",
	"themes",
	"theme",
	"new-var",
	"new-item",
	"help",
}

// suggest computes the live suggestion list for the palette input. A `use `
// prefix completes profile names, a `theme ` prefix completes preset names,
// anything else matches command names by prefix or substring. The result is
// sorted and deduplicated.
func suggest(input string, profiles, presets []string) []string {
	input = strings.TrimLeft(input, " ")
	var out []string

	switch {
	case strings.HasPrefix(input, "use "):
		q := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(input, "use ")))
		for _, name := range profiles {
			if q == "" || strings.Contains(strings.ToLower(name), q) {
				out = append(out, "use "+name)
			}
		}
	case strings.HasPrefix(input, "theme "):
		q := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(input, "theme ")))
		for _, name := range presets {
			if q == "" || strings.Contains(strings.ToLower(name), q) {
				out = append(out, "theme "+name)
			}
		}
	default:
		q := strings.ToLower(input)
		for _, c := range commandNames {
			if q == "" || strings.HasPrefix(c, q) || strings.Contains(c, q) {
				out = append(out, c)
			}
		}
	}

	sort.Strings(out)
	return dedup(out)
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// pickCommand decides what Enter should run: the typed text when it is an
// exact suggestion (or when nothing matched at all), otherwise the selected
// suggestion. Empty input runs the selection.
func pickCommand(typed string, suggestions []string, selected int) string {
	typed = strings.TrimSpace(typed)
	pick := ""
	if selected >= 0 && selected < len(suggestions) {
		pick = suggestions[selected]
	}
	if typed == "" {
		return pick
	}
	if len(suggestions) == 0 {
		return typed
	}
	for _, s := range suggestions {
		if s == typed {
			return typed
		}
	}
	if pick == "" {
		return typed
	}
	return pick
}

// execute runs one palette command against the model. It returns a non-nil
// tea.Cmd only for quit. Unknown commands land in the status line as errors.
func (m *Model) execute(cmd string) tea.Cmd {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	switch cmd {
	case "quit", "q", "exit":
		return tea.Quit
	case "profiles":
		m.switchView(ViewProfiles)
		return nil
	case "vars":
		m.switchView(ViewVars)
		return nil
	case "parts":
		m.switchView(ViewParts)
		return nil
	case "items":
		m.switchView(ViewItems)
		return nil
	case "defs":
		m.switchView(ViewDefs)
		return nil
	case "preview":
		m.switchView(ViewPreview)
		return nil
	case "export":
		m.switchView(ViewExport)
		return nil
	case "help":
		m.switchView(ViewHelp)
		return nil
	case "themes":
		m.switchView(ViewHelp)
		m.setStatus(fmt.Sprintf("%d themes available (use :theme <name>)", len(theme.Presets())))
		return nil
	case "theme":
		m.setStatus("usage: theme <name>")
		return nil
	case "new-var":
		m.dialog = newDefDialog(nil)
		return nil
	case "new-item":
		m.dialog = newItemDialog(nil)
		return nil
	}

	if rest, ok := strings.CutPrefix(cmd, "use "); ok {
		name := strings.TrimSpace(rest)
		for _, p := range m.profiles {
			if p.Name == name {
				m.activeName = name
				m.setStatus("profile: " + name)
				return nil
			}
		}
		m.setError("profile not found: " + name)
		return nil
	}

	if rest, ok := strings.CutPrefix(cmd, "theme "); ok {
		name := strings.TrimSpace(rest)
		if name == "" {
			m.setStatus("usage: theme <name>")
			return nil
		}
		m.applyTheme(name)
		return nil
	}

	m.setError("unknown command: " + cmd)
	return nil
}

// applyTheme switches to the named preset and persists the choice in the
// config file. An unknown preset is an error; a failed save keeps the theme
// applied for the session and reports the error.
func (m *Model) applyTheme(name string) {
	if !theme.Has(name) {
		m.setError("unknown theme: " + name)
		return
	}
	m.cfg.Theme.Preset = name
	m.theme = theme.Resolve(name, m.cfg.Theme.Overrides())
	if err := config.Save(m.cfg); err != nil {
		log.Error().Err(err).Str("preset", name).Msg("Failed to persist theme preset")
		m.setError(err.Error())
		return
	}
	m.setStatus("theme: " + m.theme.Name)
}
