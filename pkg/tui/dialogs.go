package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	benverrors "benv/pkg/errors"
	"benv/pkg/profile"
	"benv/pkg/vars"
)

type dialogKind int

const (
	dialogAddProfile dialogKind = iota
	dialogRenameProfile
	dialogPart
	dialogItem
	dialogDef
	dialogConfirmDeleteProfile
	dialogConfirmDeleteItem
	dialogConfirmDeleteDef
)

// dialog is a modal overlay. Tab moves between fields, Enter commits, Esc
// cancels. Which context fields are meaningful depends on the kind.
type dialog struct {
	kind  dialogKind
	title string

	inputs []textinput.Model
	focus  int

	// part editor: an optional variable picker on the left plus the value
	// fields for the selected descriptor (three for PATH, one otherwise).
	picker      textinput.Model
	options     []vars.Descriptor
	optionIdx   int
	hasPicker   bool
	pickerFocus bool
	activeField int
	lastFilter  string
	partIndex   int

	// def editor
	defKind     vars.Kind
	defOriginal string

	// item editor
	itemID uint64

	// profile rename
	renameFrom string

	// confirm dialogs
	prompt    string
	payload   string
	payloadID uint64
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = width
	in.Prompt = ""
	return in
}

func newProfileDialog(renameFrom string) *dialog {
	name := newInput("profile name", 32)
	name.SetValue(renameFrom)
	name.Focus()
	d := &dialog{
		kind:       dialogAddProfile,
		title:      "New profile",
		inputs:     []textinput.Model{name},
		renameFrom: renameFrom,
	}
	if renameFrom != "" {
		d.kind = dialogRenameProfile
		d.title = "Rename profile"
	}
	return d
}

func newConfirmDialog(kind dialogKind, prompt, payload string, id uint64) *dialog {
	return &dialog{
		kind:      kind,
		title:     "Confirm",
		prompt:    prompt,
		payload:   payload,
		payloadID: id,
	}
}

// newPartDialog builds the part editor. With locked=false the editor opens
// with a variable picker over options; otherwise options must hold exactly
// the descriptor being edited. partIndex >= 0 edits that part of the
// variable, -1 adds a new one.
func newPartDialog(options []vars.Descriptor, locked bool, partIndex int, initial *profile.Entry) *dialog {
	d := &dialog{
		kind:      dialogPart,
		title:     "Add part",
		hasPicker: !locked,
		partIndex: partIndex,
		options:   options,
		picker:    newInput("variable", 24),
		inputs: []textinput.Model{
			newInput("path", 40),
			newInput("program", 20),
			newInput("version", 12),
			newInput("value", 40),
		},
	}
	if partIndex >= 0 {
		d.title = "Edit part"
	}
	if initial != nil {
		d.inputs[0].SetValue(initial.Path)
		d.inputs[1].SetValue(initial.Program)
		d.inputs[2].SetValue(initial.Version)
		d.inputs[3].SetValue(initial.Value)
		for i, o := range options {
			if o.Name == initial.VariableName() {
				d.optionIdx = i
				break
			}
		}
	}
	if d.hasPicker {
		d.pickerFocus = true
	}
	d.syncFocus()
	return d
}

func newItemDialog(initial *profile.Item) *dialog {
	path := newInput("path", 40)
	prog := newInput("program", 20)
	ver := newInput("version", 12)
	tags := newInput("tags (comma separated)", 32)
	var id uint64
	if initial != nil {
		id = initial.ID
		path.SetValue(initial.Path)
		prog.SetValue(initial.Program)
		ver.SetValue(initial.Version)
		tags.SetValue(strings.Join(initial.Tags, ","))
	}
	path.Focus()
	title := "New item"
	if id != 0 {
		title = "Edit item"
	}
	return &dialog{
		kind:   dialogItem,
		title:  title,
		inputs: []textinput.Model{path, prog, ver, tags},
		itemID: id,
	}
}

func newDefDialog(initial *vars.CustomDef) *dialog {
	name := newInput("name", 24)
	sep := newInput("separator", 8)
	kind := vars.KindList
	original := ""
	sepVal := ":"
	if initial != nil {
		original = initial.Name
		kind = initial.Kind
		sepVal = initial.Separator
		name.SetValue(initial.Name)
	}
	sep.SetValue(sepVal)
	name.Focus()
	title := "New custom var"
	if original != "" {
		title = "Edit custom var"
	}
	return &dialog{
		kind:        dialogDef,
		title:       title,
		inputs:      []textinput.Model{name, sep},
		defKind:     kind,
		defOriginal: original,
	}
}

func (d *dialog) isConfirm() bool {
	switch d.kind {
	case dialogConfirmDeleteProfile, dialogConfirmDeleteItem, dialogConfirmDeleteDef:
		return true
	default:
		return false
	}
}

// filtered returns the picker options matching the picker input. An empty
// match set falls back to the full list so the selection never strands.
func (d *dialog) filtered() []vars.Descriptor {
	if !d.hasPicker {
		return d.options
	}
	q := strings.ToLower(strings.TrimSpace(d.picker.Value()))
	if q == "" {
		return d.options
	}
	out := make([]vars.Descriptor, 0, len(d.options))
	for _, o := range d.options {
		if strings.Contains(strings.ToLower(o.Name), q) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return d.options
	}
	return out
}

func (d *dialog) currentDescriptor() vars.Descriptor {
	opts := d.filtered()
	return opts[clampCursor(d.optionIdx, len(opts))]
}

// partFields returns the indices into inputs that are live for the current
// descriptor: the three PATH fields, or the single value field.
func (d *dialog) partFields() []int {
	if d.currentDescriptor().Name == "PATH" {
		return []int{0, 1, 2}
	}
	return []int{3}
}

// buildEntry materializes the editor fields as an entry for the selected
// variable. Values pass through untrimmed; spaces are data for flag vars.
func (d *dialog) buildEntry(catalog *vars.Catalog) profile.Entry {
	desc := d.currentDescriptor()
	if desc.Name == "PATH" {
		return profile.NewPathEntry(d.inputs[0].Value(), d.inputs[1].Value(), d.inputs[2].Value())
	}
	return profile.NewPartEntry(catalog, desc.Name, d.inputs[3].Value())
}

func (d *dialog) focusedInput() *textinput.Model {
	switch d.kind {
	case dialogAddProfile, dialogRenameProfile:
		return &d.inputs[0]
	case dialogItem:
		return &d.inputs[clampCursor(d.focus, len(d.inputs))]
	case dialogDef:
		switch d.focus {
		case 0:
			return &d.inputs[0]
		case 2:
			return &d.inputs[1]
		}
		return nil
	case dialogPart:
		if d.pickerFocus {
			return &d.picker
		}
		fields := d.partFields()
		return &d.inputs[fields[clampCursor(d.activeField, len(fields))]]
	default:
		return nil
	}
}

func (d *dialog) syncFocus() {
	d.picker.Blur()
	for i := range d.inputs {
		d.inputs[i].Blur()
	}
	if in := d.focusedInput(); in != nil {
		in.Focus()
	}
}

func (d *dialog) cycleFocus(reverse bool) {
	switch d.kind {
	case dialogItem:
		d.focus = step(d.focus, len(d.inputs), reverse)
	case dialogDef:
		// name, kind, separator; the separator stop exists only for lists
		order := []int{0, 1}
		if d.defKind == vars.KindList {
			order = []int{0, 1, 2}
		}
		pos := 0
		for i, f := range order {
			if f == d.focus {
				pos = i
				break
			}
		}
		d.focus = order[step(pos, len(order), reverse)]
	case dialogPart:
		fields := d.partFields()
		if !d.hasPicker {
			d.activeField = step(d.activeField, len(fields), reverse)
			break
		}
		switch {
		case d.pickerFocus:
			d.pickerFocus = false
			d.activeField = 0
			if reverse {
				d.activeField = len(fields) - 1
			}
		case reverse && d.activeField == 0, !reverse && d.activeField >= len(fields)-1:
			d.pickerFocus = true
		case reverse:
			d.activeField--
		default:
			d.activeField++
		}
	}
	d.syncFocus()
}

func step(pos, n int, reverse bool) int {
	if n <= 0 {
		return 0
	}
	if reverse {
		return (pos + n - 1) % n
	}
	return (pos + 1) % n
}

// updateDialog routes a key to the open dialog: Esc cancels, Enter commits,
// Tab moves focus, confirm dialogs accept y/n, the part picker takes
// up/down, and everything else goes to the focused text input.
func (m *Model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	d := m.dialog
	switch msg.String() {
	case "esc":
		m.dialog = nil
		return nil
	case "enter":
		m.confirmDialog()
		return nil
	case "tab", "shift+tab":
		if !d.isConfirm() {
			d.cycleFocus(msg.String() == "shift+tab")
		}
		return nil
	}

	if d.isConfirm() {
		switch msg.String() {
		case "y", "Y":
			m.confirmDialog()
		case "n", "N":
			m.dialog = nil
		}
		return nil
	}

	if d.kind == dialogDef && d.focus == 1 {
		switch msg.String() {
		case "t", "T", " ":
			d.defKind = toggleKind(d.defKind)
			if d.defKind == vars.KindList && strings.TrimSpace(d.inputs[1].Value()) == "" {
				d.inputs[1].SetValue(":")
			}
		}
		return nil
	}

	if d.kind == dialogPart && d.pickerFocus {
		switch msg.String() {
		case "up":
			d.optionIdx = clampCursor(d.optionIdx-1, len(d.filtered()))
			return nil
		case "down":
			d.optionIdx = clampCursor(d.optionIdx+1, len(d.filtered()))
			return nil
		}
		var cmd tea.Cmd
		d.picker, cmd = d.picker.Update(msg)
		if v := d.picker.Value(); v != d.lastFilter {
			d.lastFilter = v
			d.optionIdx = 0
		}
		return cmd
	}

	if in := d.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

// confirmDialog commits the open dialog. An empty required field closes the
// dialog without saving, the same way Esc would; store failures land in the
// status line.
func (m *Model) confirmDialog() {
	d := m.dialog
	m.dialog = nil
	if d == nil {
		return
	}

	switch d.kind {
	case dialogAddProfile:
		name := strings.TrimSpace(d.inputs[0].Value())
		if name == "" {
			return
		}
		for _, p := range m.profiles {
			if p.Name == name {
				m.fail(benverrors.Newf(benverrors.ErrProfileExists, "profile already exists: %s", name))
				return
			}
		}
		if m.fail(m.store.SaveProfile(profile.New(name))) {
			return
		}
		m.activeName = name
		m.afterMutation("added profile: " + name)

	case dialogRenameProfile:
		name := strings.TrimSpace(d.inputs[0].Value())
		if name == "" || name == d.renameFrom {
			return
		}
		if m.fail(m.store.RenameProfile(d.renameFrom, name)) {
			return
		}
		if m.activeName == d.renameFrom {
			m.activeName = name
		}
		m.afterMutation(fmt.Sprintf("renamed profile: %s -> %s", d.renameFrom, name))

	case dialogPart:
		m.applyPartDialog(d)

	case dialogItem:
		it := profile.Item{
			ID:      d.itemID,
			Path:    strings.TrimSpace(d.inputs[0].Value()),
			Program: strings.TrimSpace(d.inputs[1].Value()),
			Version: strings.TrimSpace(d.inputs[2].Value()),
			Tags:    parseTags(d.inputs[3].Value()),
		}
		if it.Path == "" {
			return
		}
		if it.ID == 0 {
			saved, err := m.store.AddItem(it)
			if m.fail(err) {
				return
			}
			m.afterMutation("saved item: " + saved.Path)
		} else {
			if m.fail(m.store.UpdateItem(it)) {
				return
			}
			m.afterMutation("updated item: " + it.Path)
		}

	case dialogDef:
		def := vars.CustomDef{
			Name:      strings.TrimSpace(d.inputs[0].Value()),
			Kind:      d.defKind,
			Separator: d.inputs[1].Value(),
		}
		if def.Name == "" {
			return
		}
		if def.Kind == vars.KindScalar {
			def.Separator = ""
		}
		if vars.IsBuiltin(def.Name) {
			m.fail(benverrors.Newf(benverrors.ErrInvalidInput, "%s is a built-in variable", def.Name))
			return
		}
		if d.defOriginal == "" {
			if _, err := m.store.CustomVarDef(def.Name); err == nil {
				m.fail(benverrors.Newf(benverrors.ErrDefExists, "custom var def already exists: %s", def.Name))
				return
			}
		}
		if m.fail(m.store.SaveCustomVarDef(def)) {
			return
		}
		if d.defOriginal != "" && d.defOriginal != def.Name {
			if m.fail(m.store.DeleteCustomVarDef(d.defOriginal)) {
				return
			}
		}
		m.afterMutation("saved var def: " + def.Name)

	case dialogConfirmDeleteProfile:
		if m.fail(m.store.DeleteProfile(d.payload)) {
			return
		}
		m.afterMutation("deleted profile: " + d.payload)

	case dialogConfirmDeleteItem:
		if m.fail(m.store.DeleteItem(d.payloadID)) {
			return
		}
		m.afterMutation("deleted item")

	case dialogConfirmDeleteDef:
		if m.fail(m.store.DeleteCustomVarDef(d.payload)) {
			return
		}
		m.afterMutation("deleted var def: " + d.payload)
	}
}

// applyPartDialog writes the part editor result back through the store.
// Scalar variables replace their parts wholesale; list variables append new
// parts and splice edits in place.
func (m *Model) applyPartDialog(d *dialog) {
	desc := d.currentDescriptor()
	entry := d.buildEntry(m.catalog())

	p := m.activeProfile()
	if p.Name == "" {
		return
	}

	if d.partIndex >= 0 {
		parts := partsOf(p, desc.Name)
		if d.partIndex >= len(parts) {
			return
		}
		parts[d.partIndex] = entry
		if m.fail(m.store.ReplaceVarParts(p.Name, desc.Name, parts)) {
			return
		}
		m.afterMutation("edited part in " + desc.Name)
		return
	}

	if desc.Kind == vars.KindScalar {
		if m.fail(m.store.ReplaceVarParts(p.Name, desc.Name, []profile.Entry{entry})) {
			return
		}
	} else {
		p.Entries = append(p.Entries, entry)
		if m.fail(m.store.SaveProfile(p)) {
			return
		}
	}
	m.selectedVar = desc.Name
	m.afterMutation("added part to " + desc.Name)
}

// afterMutation refreshes the cache, re-clamps the cursor against the new
// row count, and reports success.
func (m *Model) afterMutation(status string) {
	if err := m.reload(); err != nil {
		m.fail(err)
		return
	}
	m.moveCursor(0)
	m.setStatus(status)
}

func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func toggleKind(k vars.Kind) vars.Kind {
	if k == vars.KindList {
		return vars.KindScalar
	}
	return vars.KindList
}
