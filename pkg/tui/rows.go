package tui

import (
	"sort"
	"strings"

	"benv/pkg/export"
	"benv/pkg/profile"
	"benv/pkg/vars"
)

// varRow is one line of the Vars view: a distinct variable of the active
// profile together with its aggregated preview.
type varRow struct {
	Name      string
	Kind      vars.Kind
	Separator string
	Count     int
	Joined    string
}

// matchFilter reports whether s matches the live filter q. Filters are
// case-insensitive substring matches; an empty filter matches everything.
func matchFilter(s, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

// varRows computes the Vars view rows for p: one row per distinct variable
// in first-seen order (the same order export emits statements), carrying the
// catalog kind, the part count and the joined preview value.
func varRows(p profile.Profile, catalog *vars.Catalog, q string) []varRow {
	asgs := export.Aggregate(p)
	rows := make([]varRow, 0, len(asgs))
	for _, a := range asgs {
		if !matchFilter(a.Var, q) {
			continue
		}
		rows = append(rows, varRow{
			Name:      a.Var,
			Kind:      catalog.Lookup(a.Var).Kind,
			Separator: a.Separator,
			Count:     len(p.PartsOf(a.Var)),
			Joined:    a.Value,
		})
	}
	return rows
}

// partsOf returns the entries of p contributing to varName, in stored order.
func partsOf(p profile.Profile, varName string) []profile.Entry {
	idx := p.PartsOf(varName)
	out := make([]profile.Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, p.Entries[i])
	}
	return out
}

// visibleParts returns the indices into parts that survive the filter. The
// filter matches the rendered list form, so "PATH: /usr/bin" style queries
// work the same way the rows read.
func visibleParts(parts []profile.Entry, q string) []int {
	var idx []int
	for i, e := range parts {
		if matchFilter(e.String(), q) {
			idx = append(idx, i)
		}
	}
	return idx
}

// visibleProfiles returns the indices into profiles whose name matches q.
func visibleProfiles(profiles []profile.Profile, q string) []int {
	var idx []int
	for i, p := range profiles {
		if matchFilter(p.Name, q) {
			idx = append(idx, i)
		}
	}
	return idx
}

// visibleItems returns the indices into items matching q by path or by any
// tag.
func visibleItems(items []profile.Item, q string) []int {
	var idx []int
	for i, it := range items {
		if matchFilter(it.Path, q) {
			idx = append(idx, i)
			continue
		}
		for _, t := range it.Tags {
			if matchFilter(t, q) {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}

// defRows returns the custom definitions sorted by name and filtered by q.
func defRows(defs []vars.CustomDef, q string) []vars.CustomDef {
	rows := make([]vars.CustomDef, 0, len(defs))
	for _, d := range defs {
		if matchFilter(d.Name, q) {
			rows = append(rows, d)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// windowBounds returns the half-open row range [start, end) to render so
// that the cursor stays roughly centered once the list outgrows the
// viewport.
func windowBounds(cursor, total, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	if total <= visible {
		return 0, total
	}
	start := 0
	if cursor >= visible/2 {
		start = cursor - visible/2
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}

// clampCursor keeps a selection index inside [0, length).
func clampCursor(cur, length int) int {
	if length <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= length {
		return length - 1
	}
	return cur
}
