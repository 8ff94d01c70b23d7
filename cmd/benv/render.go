package benv

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"benv/pkg/export"
	"benv/pkg/profile"
	"benv/pkg/ui"
)

// renderProfileList renders the profile table: name, entry count, distinct
// variables. Terminal output gets a pterm table, everything else plain
// columns.
func renderProfileList(profiles []profile.Profile, format ui.Format) string {
	if len(profiles) == 0 {
		return MsgNoProfiles + "\n"
	}

	if format == ui.FormatTerminal {
		data := pterm.TableData{{"PROFILE", "ENTRIES", "VARIABLES"}}
		for _, p := range profiles {
			data = append(data, []string{
				p.Name,
				fmt.Sprintf("%d", len(p.Entries)),
				fmt.Sprintf("%d", distinctVars(p)),
			})
		}
		if rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender(); err == nil {
			return rendered + "\n"
		}
	}

	var b strings.Builder
	for _, p := range profiles {
		fmt.Fprintf(&b, "%-20s  %3d entries  %3d vars\n", p.Name, len(p.Entries), distinctVars(p))
	}
	return b.String()
}

// renderShow renders the aggregated variable table followed by the export
// statements.
func renderShow(p profile.Profile, mode export.Mode, format ui.Format) string {
	assigns := export.Aggregate(p)

	var b strings.Builder
	if format == ui.FormatTerminal && len(assigns) > 0 {
		data := pterm.TableData{{"VARIABLE", "VALUE"}}
		for _, a := range assigns {
			data = append(data, []string{a.Var, a.Value})
		}
		if rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender(); err == nil {
			b.WriteString(rendered)
			b.WriteString("\n\n")
		}
	} else {
		for _, a := range assigns {
			fmt.Fprintf(&b, "%s = %s\n", a.Var, a.Value)
		}
		if len(assigns) > 0 {
			b.WriteString("\n")
		}
	}

	for _, stmt := range export.Statements(p, mode) {
		b.WriteString(stmt)
		b.WriteString("\n")
	}
	return b.String()
}

func distinctVars(p profile.Profile) int {
	seen := make(map[string]struct{}, len(p.Entries))
	for _, e := range p.Entries {
		seen[e.VariableName()] = struct{}{}
	}
	return len(seen)
}
