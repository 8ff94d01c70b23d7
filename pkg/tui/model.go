package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"benv/pkg/config"
	"benv/pkg/export"
	"benv/pkg/profile"
	"benv/pkg/store"
	"benv/pkg/theme"
	"benv/pkg/vars"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeCommand
	modeSearch
)

type holdKind int

const (
	holdItem holdKind = iota
	holdPart
)

// holding is a picked-up row waiting for a drop. A held part has already
// been removed from its profile; Esc puts it back where it came from.
type holding struct {
	kind holdKind

	item profile.Item

	varName string
	from    int
	entry   profile.Entry
}

// Model is the single bubbletea model. It caches the store's contents and
// refreshes the cache after every mutation; the store stays the source of
// truth for everything except transient UI state.
type Model struct {
	store *store.Store
	cfg   *config.Config
	theme *theme.Theme

	profiles []profile.Profile
	items    []profile.Item
	defs     []vars.CustomDef

	activeName  string
	selectedVar string

	view View
	back []View

	profileCursor int
	varCursor     int
	partCursor    int
	itemCursor    int
	defCursor     int

	profilesFilter string
	varsFilter     string
	partsFilter    string
	itemsFilter    string
	defsFilter     string

	mode        inputMode
	input       textinput.Model
	suggestions []string
	suggestIdx  int
	searchIn    View

	exportMode export.Mode

	status    string
	statusErr bool

	holding *holding
	dialog  *dialog

	width  int
	height int
}

func newModel(st *store.Store, cfg *config.Config) Model {
	in := textinput.New()
	in.CharLimit = 128
	in.Width = 48
	in.Prompt = ""

	return Model{
		store:       st,
		cfg:         cfg,
		theme:       theme.Resolve(cfg.Theme.Preset, cfg.Theme.Overrides()),
		view:        ViewVars,
		selectedVar: "PATH",
		input:       in,
	}
}

// reload refreshes the cached store contents and repairs the active
// selection when the profile it pointed at has gone away.
func (m *Model) reload() error {
	profiles, err := m.store.Profiles()
	if err != nil {
		return err
	}
	items, err := m.store.Items()
	if err != nil {
		return err
	}
	defs, err := m.store.CustomVarDefs()
	if err != nil {
		return err
	}
	m.profiles = profiles
	m.items = items
	m.defs = defs

	if m.activeIndex() < 0 && len(m.profiles) > 0 {
		m.activeName = m.profiles[0].Name
	}
	if m.selectedVar == "" {
		m.selectedVar = "PATH"
	}
	return nil
}

func (m *Model) activeIndex() int {
	for i, p := range m.profiles {
		if p.Name == m.activeName {
			return i
		}
	}
	return -1
}

// activeProfile returns the active profile, or an empty one before the
// first reload. Callers mutate the copy and hand it back to the store.
func (m *Model) activeProfile() profile.Profile {
	if i := m.activeIndex(); i >= 0 {
		return m.profiles[i].Clone()
	}
	return profile.Profile{}
}

func (m *Model) catalog() *vars.Catalog {
	return m.store.Catalog()
}

// partOptions is the variable picker list: the catalog descriptors
// (built-ins first, customs after) plus any unknown names already present
// in the active profile.
func (m *Model) partOptions() []vars.Descriptor {
	cat := m.catalog()
	opts := cat.Descriptors()
	seen := make(map[string]bool, len(opts))
	for _, d := range opts {
		seen[d.Name] = true
	}
	for _, name := range m.activeProfile().VariableNames() {
		if !seen[name] {
			opts = append(opts, cat.Lookup(name))
			seen[name] = true
		}
	}
	return opts
}

func (m *Model) cursorRef(v View) *int {
	switch v {
	case ViewProfiles:
		return &m.profileCursor
	case ViewVars:
		return &m.varCursor
	case ViewParts:
		return &m.partCursor
	case ViewItems:
		return &m.itemCursor
	case ViewDefs:
		return &m.defCursor
	default:
		return nil
	}
}

func (m *Model) filterRef(v View) *string {
	switch v {
	case ViewProfiles:
		return &m.profilesFilter
	case ViewVars:
		return &m.varsFilter
	case ViewParts:
		return &m.partsFilter
	case ViewItems:
		return &m.itemsFilter
	case ViewDefs:
		return &m.defsFilter
	default:
		return nil
	}
}

func (m *Model) filterOf(v View) string {
	if f := m.filterRef(v); f != nil {
		return *f
	}
	return ""
}

// rowCount returns how many rows the view currently shows, filters applied.
func (m *Model) rowCount(v View) int {
	switch v {
	case ViewProfiles:
		return len(visibleProfiles(m.profiles, m.profilesFilter))
	case ViewVars:
		return len(varRows(m.activeProfile(), m.catalog(), m.varsFilter))
	case ViewParts:
		return len(visibleParts(partsOf(m.activeProfile(), m.selectedVar), m.partsFilter))
	case ViewItems:
		return len(visibleItems(m.items, m.itemsFilter))
	case ViewDefs:
		return len(defRows(m.defs, m.defsFilter))
	default:
		return 0
	}
}

// moveCursor shifts the active view's selection by delta, clamped to the
// visible rows. In the Vars view the variable context follows the cursor.
func (m *Model) moveCursor(delta int) {
	c := m.cursorRef(m.view)
	if c == nil {
		return
	}
	*c = clampCursor(*c+delta, m.rowCount(m.view))
	m.syncSelectedVar()
}

func (m *Model) jumpTop() {
	if c := m.cursorRef(m.view); c != nil {
		*c = 0
		m.syncSelectedVar()
	}
}

func (m *Model) jumpBottom() {
	if c := m.cursorRef(m.view); c != nil {
		if n := m.rowCount(m.view); n > 0 {
			*c = n - 1
		}
		m.syncSelectedVar()
	}
}

func (m *Model) syncSelectedVar() {
	if m.view != ViewVars {
		return
	}
	rows := varRows(m.activeProfile(), m.catalog(), m.varsFilter)
	if len(rows) == 0 {
		return
	}
	m.selectedVar = rows[clampCursor(m.varCursor, len(rows))].Name
}

// switchView jumps directly to v, dropping any pushed views.
func (m *Model) switchView(v View) {
	m.view = v
	m.back = nil
}

// pushView enters v with the current view on the return stack, so q comes
// back here instead of quitting.
func (m *Model) pushView(v View) {
	m.back = append(m.back, m.view)
	m.view = v
}

func (m *Model) popView() bool {
	if len(m.back) == 0 {
		return false
	}
	m.view = m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	return true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// fail reports a store error in the status line. Nil errors are ignored so
// call sites can pass results through unconditionally.
func (m *Model) fail(err error) bool {
	if err == nil {
		return false
	}
	log.Error().Err(err).Msg("Store operation failed")
	m.setError(err.Error())
	return true
}

// Selected-row resolvers. Each maps the view cursor through the filter to
// an index into the unfiltered slice.

func (m *Model) selectedProfileIndex() (int, bool) {
	idx := visibleProfiles(m.profiles, m.profilesFilter)
	c := clampCursor(m.profileCursor, len(idx))
	if len(idx) == 0 {
		return 0, false
	}
	return idx[c], true
}

func (m *Model) selectedItemIndex() (int, bool) {
	idx := visibleItems(m.items, m.itemsFilter)
	c := clampCursor(m.itemCursor, len(idx))
	if len(idx) == 0 {
		return 0, false
	}
	return idx[c], true
}

func (m *Model) selectedPartIndex(parts []profile.Entry) (int, bool) {
	idx := visibleParts(parts, m.partsFilter)
	c := clampCursor(m.partCursor, len(idx))
	if len(idx) == 0 {
		return 0, false
	}
	return idx[c], true
}

func (m *Model) selectedVarRow() (varRow, bool) {
	rows := varRows(m.activeProfile(), m.catalog(), m.varsFilter)
	if len(rows) == 0 {
		return varRow{}, false
	}
	return rows[clampCursor(m.varCursor, len(rows))], true
}

func (m *Model) selectedDef() (vars.CustomDef, bool) {
	rows := defRows(m.defs, m.defsFilter)
	if len(rows) == 0 {
		return vars.CustomDef{}, false
	}
	return rows[clampCursor(m.defCursor, len(rows))], true
}
