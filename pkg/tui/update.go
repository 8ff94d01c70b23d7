package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"benv/pkg/export"
	"benv/pkg/profile"
	"benv/pkg/theme"
	"benv/pkg/vars"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages by input mode: an open dialog captures everything,
// then command and search modes, then the normal-mode keymap.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.dialog != nil {
			cmd := m.updateDialog(msg)
			return m, cmd
		}
		switch m.mode {
		case modeCommand:
			return m.updateCommand(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.popView() {
			return m, nil
		}
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.jumpTop()
	case "G", "end":
		m.jumpBottom()
	case "pgdown":
		m.moveCursor(10)
	case "pgup":
		m.moveCursor(-10)
	case "tab":
		m.switchView(m.view.Next())
	case "?":
		if m.view != ViewHelp {
			m.pushView(ViewHelp)
		}
	case ":":
		m.mode = modeCommand
		m.input.Reset()
		m.input.Focus()
		m.refreshSuggestions()
		return m, textinput.Blink
	case "/":
		if m.view.Filterable() {
			m.mode = modeSearch
			m.searchIn = m.view
			m.input.Reset()
			m.input.Focus()
			if ref := m.filterRef(m.view); ref != nil {
				*ref = ""
			}
			m.moveCursor(0)
			return m, textinput.Blink
		}
	case "esc":
		if m.holding != nil {
			m.cancelHold()
			return m, nil
		}
		m.status = ""
		m.statusErr = false
	case "enter":
		m.activate()
	default:
		return m.updateViewKey(msg)
	}
	return m, nil
}

// activate handles Enter on the selected row: in Profiles it switches the
// active profile and opens its variables, in Vars it opens the variable's
// parts.
func (m *Model) activate() {
	switch m.view {
	case ViewProfiles:
		if i, ok := m.selectedProfileIndex(); ok {
			m.activeName = m.profiles[i].Name
			m.varCursor = 0
			m.pushView(ViewVars)
			m.syncSelectedVar()
			m.setStatus("profile: " + m.activeName)
		}
	case ViewVars:
		if row, ok := m.selectedVarRow(); ok {
			m.selectedVar = row.Name
			m.partCursor = 0
			m.pushView(ViewParts)
			m.setStatus("selected var: " + row.Name)
		}
	}
}

// updateViewKey handles the keys specific to the current view. Opening a
// dialog returns a blink command for its focused input.
func (m Model) updateViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.view {
	case ViewProfiles:
		switch key {
		case "A":
			m.dialog = newProfileDialog("")
		case "E":
			if i, ok := m.selectedProfileIndex(); ok {
				m.dialog = newProfileDialog(m.profiles[i].Name)
			}
		case "D":
			if i, ok := m.selectedProfileIndex(); ok {
				name := m.profiles[i].Name
				m.dialog = newConfirmDialog(dialogConfirmDeleteProfile,
					fmt.Sprintf("Delete profile %q? (y/n)", name), name, 0)
			}
		}

	case ViewVars:
		switch key {
		case "a":
			m.dialog = newPartDialog(m.partOptions(), false, -1, nil)
		case "p":
			if row, ok := m.selectedVarRow(); ok {
				m.dropHolding(row.Name, -1)
			}
		}

	case ViewParts:
		m.updatePartsKey(key)

	case ViewItems:
		m.updateItemsKey(key)

	case ViewDefs:
		switch key {
		case "C":
			m.dialog = newDefDialog(nil)
		case "e":
			if def, ok := m.selectedDef(); ok {
				m.dialog = newDefDialog(&def)
			}
		case "d":
			if def, ok := m.selectedDef(); ok {
				m.dialog = newConfirmDialog(dialogConfirmDeleteDef,
					fmt.Sprintf("Delete custom var %q? (y/n)", def.Name), def.Name, 0)
			}
		}

	case ViewExport:
		switch key {
		case "p":
			m.exportMode = export.ModePrepend
			m.setStatus("export mode: prepend")
		case "a":
			m.exportMode = export.ModeAppend
			m.setStatus("export mode: append")
		case "r":
			m.exportMode = export.ModeReplace
			m.setStatus("export mode: replace")
		}
	}

	if m.dialog != nil {
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) updatePartsKey(key string) {
	p := m.activeProfile()
	if p.Name == "" {
		return
	}
	parts := partsOf(p, m.selectedVar)
	desc := m.catalog().Lookup(m.selectedVar)

	switch key {
	case "a":
		m.dialog = newPartDialog([]vars.Descriptor{desc}, true, -1, nil)

	case "e":
		if idx, ok := m.selectedPartIndex(parts); ok {
			e := parts[idx]
			m.dialog = newPartDialog([]vars.Descriptor{desc}, true, idx, &e)
		}

	case "d":
		if idx, ok := m.selectedPartIndex(parts); ok {
			parts = append(parts[:idx], parts[idx+1:]...)
			if m.fail(m.store.ReplaceVarParts(p.Name, m.selectedVar, parts)) {
				return
			}
			m.afterMutation("deleted part from " + m.selectedVar)
		}

	case "y":
		if idx, ok := m.selectedPartIndex(parts); ok {
			dup := parts[idx]
			parts = append(parts[:idx+1], append([]profile.Entry{dup}, parts[idx+1:]...)...)
			if m.fail(m.store.ReplaceVarParts(p.Name, m.selectedVar, parts)) {
				return
			}
			m.afterMutation("duplicated part")
		}

	case "K":
		if idx, ok := m.selectedPartIndex(parts); ok && idx > 0 {
			parts[idx-1], parts[idx] = parts[idx], parts[idx-1]
			if m.fail(m.store.ReplaceVarParts(p.Name, m.selectedVar, parts)) {
				return
			}
			m.partCursor = clampCursor(m.partCursor-1, len(parts))
			m.afterMutation("moved part up in " + m.selectedVar)
		}

	case "J":
		if idx, ok := m.selectedPartIndex(parts); ok && idx < len(parts)-1 {
			parts[idx], parts[idx+1] = parts[idx+1], parts[idx]
			if m.fail(m.store.ReplaceVarParts(p.Name, m.selectedVar, parts)) {
				return
			}
			m.partCursor = clampCursor(m.partCursor+1, len(parts))
			m.afterMutation("moved part down in " + m.selectedVar)
		}

	case "m":
		if idx, ok := m.selectedPartIndex(parts); ok {
			entry := parts[idx]
			parts = append(parts[:idx], parts[idx+1:]...)
			if m.fail(m.store.ReplaceVarParts(p.Name, m.selectedVar, parts)) {
				return
			}
			m.holding = &holding{kind: holdPart, varName: m.selectedVar, from: idx, entry: entry}
			if err := m.reload(); err != nil {
				m.fail(err)
				return
			}
			m.moveCursor(0)
			m.setStatus("moving part (navigate, p:drop, Esc:cancel)")
		}

	case "p":
		m.dropHolding(m.selectedVar, m.partCursor)
	}
}

func (m *Model) updateItemsKey(key string) {
	switch key {
	case "a":
		m.dialog = newItemDialog(nil)

	case "e":
		if i, ok := m.selectedItemIndex(); ok {
			it := m.items[i]
			m.dialog = newItemDialog(&it)
		}

	case "d":
		if i, ok := m.selectedItemIndex(); ok {
			it := m.items[i]
			m.dialog = newConfirmDialog(dialogConfirmDeleteItem,
				fmt.Sprintf("Delete item %q? (y/n)", it.Path), "", it.ID)
		}

	case "y":
		if i, ok := m.selectedItemIndex(); ok {
			dup := m.items[i]
			dup.ID = 0
			if _, err := m.store.AddItem(dup); m.fail(err) {
				return
			}
			m.afterMutation("duplicated item")
		}

	case "m":
		if i, ok := m.selectedItemIndex(); ok {
			m.holding = &holding{kind: holdItem, item: m.items[i]}
			m.setStatus("picked item")
		}

	case "s":
		if i, ok := m.selectedItemIndex(); ok {
			it := m.items[i]
			p := m.activeProfile()
			if p.Name == "" {
				return
			}
			p.Entries = append(p.Entries, it.Entry())
			if m.fail(m.store.SaveProfile(p)) {
				return
			}
			m.afterMutation(fmt.Sprintf("stamped %s into %s", it.Path, p.Name))
		}

	case "p":
		m.dropHolding("PATH", -1)
	}
}

// dropHolding inserts the held entry into the named list variable of the
// active profile, at position at (or appended when at is out of range). A
// part dropped back into its own variable keeps its original entry; crossing
// variables re-derives the entry from the held display value, so a PATH part
// dropped elsewhere carries only its path string.
func (m *Model) dropHolding(target string, at int) {
	h := m.holding
	if h == nil {
		m.setStatus("nothing to drop")
		return
	}
	if m.catalog().Lookup(target).Kind == vars.KindScalar {
		m.setError("cannot drop into scalar var")
		return
	}
	p := m.activeProfile()
	if p.Name == "" {
		return
	}

	var entry profile.Entry
	switch h.kind {
	case holdItem:
		if target == "PATH" {
			entry = h.item.Entry()
		} else {
			entry = profile.NewPartEntry(m.catalog(), target, h.item.Path)
		}
	case holdPart:
		if target == h.varName {
			entry = h.entry
		} else {
			entry = profile.NewPartEntry(m.catalog(), target, h.entry.DisplayValue())
		}
	}

	parts := partsOf(p, target)
	if at < 0 || at > len(parts) {
		at = len(parts)
	}
	parts = append(parts[:at], append([]profile.Entry{entry}, parts[at:]...)...)
	if m.fail(m.store.ReplaceVarParts(p.Name, target, parts)) {
		return
	}
	m.holding = nil
	m.afterMutation("dropped into " + target)
}

// cancelHold releases whatever is held. A part goes back into its source
// variable at the position it came from, clamped in case the variable shrank
// in the meantime.
func (m *Model) cancelHold() {
	h := m.holding
	m.holding = nil
	if h.kind == holdPart {
		p := m.activeProfile()
		if p.Name != "" {
			parts := partsOf(p, h.varName)
			at := min(h.from, len(parts))
			parts = append(parts[:at], append([]profile.Entry{h.entry}, parts[at:]...)...)
			if m.fail(m.store.ReplaceVarParts(p.Name, h.varName, parts)) {
				return
			}
			if err := m.reload(); err != nil {
				m.fail(err)
				return
			}
			m.moveCursor(0)
		}
	}
	m.setStatus("cancelled move")
}

func (m Model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		picked := pickCommand(m.input.Value(), m.suggestions, m.suggestIdx)
		m.mode = modeNormal
		m.input.Blur()
		cmd := m.execute(picked)
		return m, cmd
	case "tab":
		if len(m.suggestions) > 0 {
			m.input.SetValue(m.suggestions[clampCursor(m.suggestIdx, len(m.suggestions))])
			m.input.CursorEnd()
			m.refreshSuggestions()
		}
		return m, nil
	case "up":
		m.suggestIdx = clampCursor(m.suggestIdx-1, len(m.suggestions))
		return m, nil
	case "down":
		m.suggestIdx = clampCursor(m.suggestIdx+1, len(m.suggestions))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

func (m *Model) refreshSuggestions() {
	m.suggestions = suggest(m.input.Value(), m.profileNames(), theme.Presets())
	m.suggestIdx = 0
}

func (m *Model) profileNames() []string {
	names := make([]string, len(m.profiles))
	for i, p := range m.profiles {
		names[i] = p.Name
	}
	return names
}

// updateSearch applies the filter live on every keystroke. Esc drops the
// filter, Enter keeps it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if ref := m.filterRef(m.searchIn); ref != nil {
			*ref = ""
		}
		m.mode = modeNormal
		m.input.Blur()
		m.moveCursor(0)
		return m, nil
	case "enter":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if ref := m.filterRef(m.searchIn); ref != nil {
		*ref = m.input.Value()
	}
	m.moveCursor(0)
	return m, cmd
}
