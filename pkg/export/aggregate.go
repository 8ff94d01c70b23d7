package export

import (
	"strings"

	"benv/pkg/profile"
)

// Assignment is one aggregated variable: the name, the separator recorded
// for it, and the joined value of all its parts.
type Assignment struct {
	Var       string
	Separator string
	Value     string
}

// Aggregate groups a profile's entries by variable name, preserving
// first-seen order across variables and stored order within one variable.
// The separator comes from the first entry seen for that name; the value is
// every part's display value joined with it. Variables with zero parts do
// not appear, so they produce no statement downstream.
//
// Scalar variables that accumulated several parts are joined like any
// other group (with their recorded, possibly empty, separator). Enforcing
// scalar cardinality is an editing-layer policy, not the engine's.
func Aggregate(p profile.Profile) []Assignment {
	type group struct {
		sep    string
		values []string
	}

	index := make(map[string]int, len(p.Entries))
	var names []string
	var groups []group

	for _, e := range p.Entries {
		name := e.VariableName()
		i, seen := index[name]
		if !seen {
			i = len(groups)
			index[name] = i
			names = append(names, name)
			groups = append(groups, group{sep: e.Separator()})
		}
		groups[i].values = append(groups[i].values, e.DisplayValue())
	}

	out := make([]Assignment, len(names))
	for i, name := range names {
		out[i] = Assignment{
			Var:       name,
			Separator: groups[i].sep,
			Value:     strings.Join(groups[i].values, groups[i].sep),
		}
	}
	return out
}
