package profile

// Profile is a named, ordered collection of entries. Order is semantic: it
// is both the display order and the join order for list variables. There is
// no uniqueness constraint on entry variable names; several entries naming
// the same variable are exactly how parts are represented.
type Profile struct {
	Name    string  `json:"name" yaml:"name"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// New returns an empty profile with the given name.
func New(name string) Profile {
	return Profile{Name: name}
}

// Clone returns a deep copy. Profiles have value semantics; the store and
// the UI never share entry slices.
func (p Profile) Clone() Profile {
	out := Profile{Name: p.Name}
	if p.Entries != nil {
		out.Entries = make([]Entry, len(p.Entries))
		copy(out.Entries, p.Entries)
	}
	return out
}

// VariableNames returns the distinct variable names in first-seen order.
func (p Profile) VariableNames() []string {
	seen := make(map[string]bool, len(p.Entries))
	var names []string
	for _, e := range p.Entries {
		name := e.VariableName()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// PartsOf returns the indices of every entry contributing to name, in
// stored order.
func (p Profile) PartsOf(name string) []int {
	var idx []int
	for i, e := range p.Entries {
		if e.VariableName() == name {
			idx = append(idx, i)
		}
	}
	return idx
}

// ReplaceVarParts removes every entry for name and splices the replacement
// parts in at the position of the first removed entry, or appends them when
// the variable had no entries. Used by the single-variable editor so that
// re-editing a variable keeps its place among the others.
func (p *Profile) ReplaceVarParts(name string, parts []Entry) {
	insertAt := -1
	kept := make([]Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.VariableName() == name {
			if insertAt < 0 {
				insertAt = len(kept)
			}
			continue
		}
		kept = append(kept, e)
	}
	if insertAt < 0 {
		insertAt = len(kept)
	}

	out := make([]Entry, 0, len(kept)+len(parts))
	out = append(out, kept[:insertAt]...)
	out = append(out, parts...)
	out = append(out, kept[insertAt:]...)
	p.Entries = out
}

// MoveEntry moves the entry at from to position to, shifting the entries in
// between. Out-of-range indices are ignored.
func (p *Profile) MoveEntry(from, to int) {
	if from < 0 || from >= len(p.Entries) || to < 0 || to >= len(p.Entries) || from == to {
		return
	}
	e := p.Entries[from]
	p.Entries = append(p.Entries[:from], p.Entries[from+1:]...)
	rest := append(make([]Entry, 0, len(p.Entries)+1), p.Entries[:to]...)
	rest = append(rest, e)
	p.Entries = append(rest, p.Entries[to:]...)
}

// RemoveEntry deletes the entry at i. Out-of-range indices are ignored.
func (p *Profile) RemoveEntry(i int) {
	if i < 0 || i >= len(p.Entries) {
		return
	}
	p.Entries = append(p.Entries[:i], p.Entries[i+1:]...)
}

// InsertEntry inserts e at position i, clamped to the valid range.
func (p *Profile) InsertEntry(i int, e Entry) {
	if i < 0 {
		i = 0
	}
	if i > len(p.Entries) {
		i = len(p.Entries)
	}
	p.Entries = append(p.Entries, Entry{})
	copy(p.Entries[i+1:], p.Entries[i:])
	p.Entries[i] = e
}
