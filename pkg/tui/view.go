package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"benv/pkg/export"
	"benv/pkg/theme"
	"benv/pkg/vars"
)

const commandHints = "Commands: :profiles :vars :parts :items :defs :preview :export :themes :theme <name> :use <profile> :new-var :new-item :quit"

// View renders the header, the main list, the detail pane, and whichever
// overlay is active. An open dialog takes over the whole screen.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		m.width, m.height = 80, 24
	}
	if m.dialog != nil {
		return m.renderDialog()
	}

	header := m.renderHeader()

	var overlay string
	switch m.mode {
	case modeCommand:
		overlay = m.renderCommand()
	case modeSearch:
		overlay = m.renderSearch()
	}

	detailHeight := max(m.height/3, 7)
	used := lipgloss.Height(header) + detailHeight
	if overlay != "" {
		used += lipgloss.Height(overlay)
	}
	mainHeight := max(m.height-used, 3)

	sections := []string{header, m.renderMain(mainHeight), m.renderDetail(detailHeight)}
	if overlay != "" {
		sections = append(sections, overlay)
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	name := "<none>"
	if i := m.activeIndex(); i >= 0 {
		name = m.profiles[i].Name
	}
	varName := m.selectedVar
	if varName == "" {
		varName = "<none>"
	}
	context := fmt.Sprintf("Profile: %s | View: %s | Var: %s", name, m.view.Title(), varName)
	if f := m.filterOf(m.view); f != "" {
		context += " | Filter: " + f
	}

	line2 := m.theme.DimText().Render(truncate(m.viewHints(), m.width))
	if m.status != "" {
		sty := m.theme.DimText()
		if m.statusErr {
			sty = m.theme.ErrorText()
		}
		line2 = m.theme.DimText().Render(truncate(m.viewHints()+" | ", m.width)) + sty.Render(m.status)
	}

	return strings.Join([]string{
		m.theme.Text().Render(truncate(context, m.width)),
		line2,
		m.theme.DimText().Render(truncate(commandHints, m.width)),
		m.rule(""),
	}, "\n")
}

func (m Model) viewHints() string {
	switch m.view {
	case ViewProfiles:
		return "A:add E:rename D:del Enter:use  j/k:move  g:top G:bot  /:filter  ::cmd  q:quit"
	case ViewVars:
		return "Enter:parts a:add-part p:drop-held  j/k:move  g:top G:bot  /:filter  ::cmd  q:quit"
	case ViewParts:
		return "a:add e:edit d:del y:dup K/J:move m:pick p:drop  /:filter  ::cmd  q:quit"
	case ViewItems:
		return "a:add e:edit d:del y:dup s:stamp m:pick p:drop  /:filter  ::cmd  q:quit"
	case ViewDefs:
		return "C:new e:edit d:del  j/k:move  /:filter  ::cmd  q:quit"
	case ViewPreview:
		return "Aggregated values for the active profile  ::cmd  q:quit"
	case ViewExport:
		return "p/a/r:mode  ::cmd  q:quit"
	default:
		return "?:toggle-help  ::cmd  q:quit"
	}
}

// renderMain draws the current view's content in the given height. List
// views get a cursor and a window centered on it; Preview, Export, and Help
// are plain paragraphs.
func (m Model) renderMain(height int) string {
	var b strings.Builder
	visible := max(height-1, 1)

	switch m.view {
	case ViewPreview, ViewExport, ViewHelp:
		title, lines := m.paragraphContent()
		b.WriteString(m.rule(title))
		if len(lines) > visible {
			lines = lines[:visible]
		}
		for _, line := range lines {
			b.WriteString("\n" + m.theme.Text().Render(truncate(line, m.width)))
		}
		return b.String()
	}

	title, rows, cursor := m.listContent()
	b.WriteString(m.rule(title))
	if len(rows) == 0 {
		b.WriteString("\n" + m.theme.DimText().Render("  (empty)"))
		return b.String()
	}
	start, end := windowBounds(cursor, len(rows), visible)
	for i := start; i < end; i++ {
		row := truncate(rows[i], m.width-2)
		if i == cursor {
			b.WriteString("\n" + m.theme.ListHighlight().Render("» "+row))
		} else {
			b.WriteString("\n" + m.theme.Text().Render("  "+row))
		}
	}
	return b.String()
}

// listContent builds the rows for the cursor-driven views, filters applied.
func (m Model) listContent() (string, []string, int) {
	switch m.view {
	case ViewProfiles:
		idx := visibleProfiles(m.profiles, m.profilesFilter)
		rows := make([]string, len(idx))
		for n, i := range idx {
			p := m.profiles[i]
			marker := "  "
			if p.Name == m.activeName {
				marker = "* "
			}
			rows[n] = fmt.Sprintf("%s%-20s  %d entries", marker, p.Name, len(p.Entries))
		}
		return "Profiles", rows, clampCursor(m.profileCursor, len(rows))

	case ViewVars:
		vrows := varRows(m.activeProfile(), m.catalog(), m.varsFilter)
		rows := make([]string, len(vrows))
		for i, r := range vrows {
			rows[i] = fmt.Sprintf("%s  %-18s  %3d  sep='%s'  %s",
				kindBadge(r.Kind), r.Name, r.Count, r.Separator, r.Joined)
		}
		return "Vars", rows, clampCursor(m.varCursor, len(rows))

	case ViewParts:
		parts := partsOf(m.activeProfile(), m.selectedVar)
		idx := visibleParts(parts, m.partsFilter)
		rows := make([]string, len(idx))
		for n, i := range idx {
			rows[n] = parts[i].String()
		}
		return "Parts for " + m.selectedVar, rows, clampCursor(m.partCursor, len(rows))

	case ViewItems:
		idx := visibleItems(m.items, m.itemsFilter)
		rows := make([]string, len(idx))
		for n, i := range idx {
			it := m.items[i]
			line := it.String()
			if len(it.Tags) > 0 {
				line += "  [" + strings.Join(it.Tags, ",") + "]"
			}
			rows[n] = line
		}
		return "Items", rows, clampCursor(m.itemCursor, len(rows))

	case ViewDefs:
		defs := defRows(m.defs, m.defsFilter)
		rows := make([]string, len(defs))
		for i, d := range defs {
			rows[i] = fmt.Sprintf("%-18s  %-6s  sep='%s'", d.Name, kindLabel(d.Kind), d.Separator)
		}
		return "Var defs", rows, clampCursor(m.defCursor, len(rows))
	}
	return m.view.Title(), nil, 0
}

// paragraphContent builds the Preview, Export, and Help bodies.
func (m Model) paragraphContent() (string, []string) {
	switch m.view {
	case ViewPreview:
		asgs := export.Aggregate(m.activeProfile())
		lines := make([]string, 0, len(asgs)+2)
		for _, a := range asgs {
			lines = append(lines, fmt.Sprintf("%s = %s", a.Var, a.Value))
		}
		lines = append(lines, "", fmt.Sprintf("(vars: %d)", len(asgs)))
		return "Preview", lines

	case ViewExport:
		stmts := export.Statements(m.activeProfile(), m.exportMode)
		lines := append([]string{"# mode: " + m.exportMode.String(), ""}, stmts...)
		return "Export", lines

	default:
		return "Help", m.helpLines()
	}
}

func (m Model) helpLines() []string {
	return []string{
		"Navigation",
		"  :    command palette (jump to views, actions)",
		"  /    filter current view",
		"  Tab  cycle views",
		"  ?    toggle help",
		"  q    back / quit",
		"",
		"Views",
		"  profiles  vars  parts  items  defs  preview  export  help",
		"",
		"Theme",
		"  current: " + m.theme.Name,
		"  :themes lists presets, :theme <name> switches",
		"  presets: " + strings.Join(theme.Presets(), "  "),
		"",
		"Notes",
		"  Items can be picked with m and dropped with p (in Items/Vars/Parts",
		"  depending on context). Export mode (p/a/r in the Export view) changes",
		"  how values merge with what the running shell already holds.",
	}
}

func (m Model) renderDetail(height int) string {
	var body string
	switch m.view {
	case ViewProfiles:
		body = m.detailProfile()
	case ViewParts:
		body = m.detailPart()
	case ViewItems:
		body = m.detailItem()
	case ViewDefs:
		body = m.detailDef()
	case ViewHelp:
		body = "Use :profiles, :vars, :parts, :items, :defs\nUse / to filter the current view."
	default:
		body = m.detailVar(m.selectedVar)
	}

	lines := strings.Split(body, "\n")
	if len(lines) > height-1 {
		lines = lines[:height-1]
	}
	out := []string{m.rule("Details")}
	for _, line := range lines {
		out = append(out, m.theme.Text().Render(truncate(line, m.width)))
	}
	return strings.Join(out, "\n")
}

func (m Model) detailProfile() string {
	i, ok := m.selectedProfileIndex()
	if !ok {
		i = m.activeIndex()
	}
	if i < 0 || i >= len(m.profiles) {
		return "No profiles."
	}
	p := m.profiles[i]
	stmts := export.Statements(p, m.exportMode)
	if len(stmts) > 12 {
		stmts = stmts[:12]
	}
	return fmt.Sprintf("Profile: %s\nEntries: %d\n\nExport (first lines):\n%s",
		p.Name, len(p.Entries), strings.Join(stmts, "\n"))
}

func (m Model) detailVar(varName string) string {
	p := m.activeProfile()
	var line string
	var joined string
	var count int
	sep := m.catalog().Lookup(varName).Separator
	for _, a := range export.Aggregate(p) {
		if a.Var == varName {
			joined = a.Value
			sep = a.Separator
			line = export.Render(a, m.exportMode)
			break
		}
	}
	count = len(partsOf(p, varName))
	return fmt.Sprintf("Var: %s\nParts: %d\nSeparator: '%s'\n\nPreview:\n%s\n\nExport:\n%s",
		varName, count, sep, joined, line)
}

func (m Model) detailPart() string {
	parts := partsOf(m.activeProfile(), m.selectedVar)
	idx, ok := m.selectedPartIndex(parts)
	if !ok {
		return fmt.Sprintf("Var: %s\n(no selected part)", m.selectedVar)
	}
	e := parts[idx]
	return fmt.Sprintf("Var: %s\nIndex: %d\nEntry:\n%s\n\nValue:\n%s",
		m.selectedVar, idx, e.String(), e.DisplayValue())
}

func (m Model) detailItem() string {
	i, ok := m.selectedItemIndex()
	if !ok {
		return "No item selected."
	}
	it := m.items[i]
	return fmt.Sprintf("Path: %s\nProgram: %s\nVersion: %s\nTags: %s\n\nStamps as:\n%s",
		it.Path, it.Program, it.Version, it.TagLine(), it.Entry().String())
}

func (m Model) detailDef() string {
	def, ok := m.selectedDef()
	if !ok {
		return "No var definition selected."
	}
	return fmt.Sprintf("Name: %s\nKind: %s\nSeparator: '%s'",
		def.Name, kindLabel(def.Kind), def.Separator)
}

// renderCommand draws the palette at the bottom: the prompt line and up to
// eight suggestions with the selection marked.
func (m Model) renderCommand() string {
	out := []string{
		m.rule("Command"),
		m.theme.Text().Render(":" + m.input.View()),
		m.rule("Suggestions (Tab to complete)"),
	}
	sugg := m.suggestions
	if len(sugg) > 8 {
		sugg = sugg[:8]
	}
	sel := clampCursor(m.suggestIdx, len(sugg))
	for i, s := range sugg {
		if i == sel {
			out = append(out, m.theme.ListHighlight().Render("» "+s))
		} else {
			out = append(out, m.theme.Text().Render("  "+s))
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) renderSearch() string {
	return m.rule("Filter (Enter: apply, Esc: cancel)") + "\n" +
		m.theme.Text().Render("/"+m.input.View())
}

// renderDialog fills the screen with the centered modal for the open dialog.
func (m Model) renderDialog() string {
	d := m.dialog
	var lines []string

	switch {
	case d.isConfirm():
		lines = []string{d.prompt, "", "y: confirm   n/Esc: cancel"}

	case d.kind == dialogAddProfile || d.kind == dialogRenameProfile:
		lines = []string{"Name: " + d.inputs[0].View()}

	case d.kind == dialogItem:
		labels := []string{"Path", "Program", "Version", "Tags"}
		for i, l := range labels {
			lines = append(lines, fmt.Sprintf("%s%s: %s", focusMark(d.focus == i), l, d.inputs[i].View()))
		}

	case d.kind == dialogDef:
		sepLine := fmt.Sprintf("%sSeparator: (n/a)", focusMark(d.focus == 2))
		if d.defKind == vars.KindList {
			sepLine = fmt.Sprintf("%sSeparator: %s", focusMark(d.focus == 2), d.inputs[1].View())
		}
		lines = []string{
			fmt.Sprintf("%sName: %s", focusMark(d.focus == 0), d.inputs[0].View()),
			fmt.Sprintf("%sKind: %s  (t: toggle)", focusMark(d.focus == 1), kindLabel(d.defKind)),
			sepLine,
			"",
			"Note: list vars are edited as parts; export joins parts using Separator.",
		}

	case d.kind == dialogPart:
		lines = m.partDialogLines(d)
	}

	title := d.title + "  (Tab: next, Enter: save, Esc: cancel)"
	if d.isConfirm() {
		title = d.title
	}

	box := m.theme.Surface().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Colors.Border).
		Render(m.theme.Title().Render(title) + "\n\n" + strings.Join(lines, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) partDialogLines(d *dialog) []string {
	var lines []string
	desc := d.currentDescriptor()

	if d.hasPicker {
		lines = append(lines, fmt.Sprintf("%sVariable: %s", focusMark(d.pickerFocus), d.picker.View()))
		opts := d.filtered()
		start, end := windowBounds(d.optionIdx, len(opts), 6)
		for i := start; i < end; i++ {
			o := opts[i]
			row := fmt.Sprintf("%-16s %-6s sep='%s'", o.Name, kindLabel(o.Kind), o.Separator)
			if i == clampCursor(d.optionIdx, len(opts)) {
				lines = append(lines, m.theme.ListHighlight().Render("» "+row))
			} else {
				lines = append(lines, "  "+row)
			}
		}
		lines = append(lines, "")
	} else {
		lines = append(lines, "Variable: "+desc.Name, "")
	}

	if desc.Name == "PATH" {
		labels := []string{"Path", "Program", "Version"}
		for i, l := range labels {
			focused := !d.pickerFocus && d.activeField == i
			lines = append(lines, fmt.Sprintf("%s%s: %s", focusMark(focused), l, d.inputs[i].View()))
		}
	} else {
		focused := !d.pickerFocus
		lines = append(lines, fmt.Sprintf("%sValue for %s: %s", focusMark(focused), desc.Name, d.inputs[3].View()))
	}
	return lines
}

// rule draws a horizontal separator, optionally carrying a section title.
func (m Model) rule(title string) string {
	if title != "" {
		title = " " + title + " "
	}
	head := "─" + title
	n := m.width - lipgloss.Width(head)
	if n < 0 {
		n = 0
	}
	return m.theme.Frame().Render(head + strings.Repeat("─", n))
}

func focusMark(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

func kindBadge(k vars.Kind) string {
	if k == vars.KindScalar {
		return "S"
	}
	return "L"
}

func kindLabel(k vars.Kind) string {
	if k == vars.KindScalar {
		return "Scalar"
	}
	return "List"
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
