package tui

// View identifies one of the top-level screens. Tab cycles through them in
// declaration order; the command palette jumps to them by name.
type View int

const (
	ViewProfiles View = iota
	ViewVars
	ViewParts
	ViewItems
	ViewDefs
	ViewPreview
	ViewExport
	ViewHelp
)

// Title returns the name shown in the header and pane borders.
func (v View) Title() string {
	switch v {
	case ViewProfiles:
		return "Profiles"
	case ViewVars:
		return "Vars"
	case ViewParts:
		return "Parts"
	case ViewItems:
		return "Items"
	case ViewDefs:
		return "Defs"
	case ViewPreview:
		return "Preview"
	case ViewExport:
		return "Export"
	case ViewHelp:
		return "Help"
	default:
		return "?"
	}
}

// Filterable reports whether the view has list rows that `/` can filter.
func (v View) Filterable() bool {
	switch v {
	case ViewProfiles, ViewVars, ViewParts, ViewItems, ViewDefs:
		return true
	default:
		return false
	}
}

// Next returns the view after v in the Tab cycle, wrapping at the end.
func (v View) Next() View {
	if v >= ViewHelp {
		return ViewProfiles
	}
	return v + 1
}
