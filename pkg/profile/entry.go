// Package profile holds the stored data model: the Entry tagged union (one
// part contributed to one variable), the Profile aggregate that owns an
// ordered sequence of entries, and the reusable path Item catalog record.
package profile

import (
	"fmt"

	"benv/pkg/vars"
)

// EntryKind discriminates the entry union. The set is closed; every switch
// over it handles all four kinds plus a zero-value fallback so rendering
// stays total on garbage input.
type EntryKind string

const (
	// EntryPath is a structured PATH part: the exported value is the path,
	// the program and version labels are descriptive metadata only.
	EntryPath EntryKind = "path"
	// EntryBuiltin is a plain (variable, value) part for a non-PATH
	// built-in variable.
	EntryBuiltin EntryKind = "builtin"
	// EntryCustomScalar is a single-valued part for a custom variable.
	EntryCustomScalar EntryKind = "custom_scalar"
	// EntryCustomPart is a list part for a custom variable; the separator
	// is copied from the definition at creation time so historical parts
	// stay joinable even if the definition is later edited.
	EntryCustomPart EntryKind = "custom_part"
)

// Entry is one stored part. It is a flat tagged union: Kind selects which
// fields are meaningful, everything else stays at its zero value.
type Entry struct {
	Kind EntryKind `json:"kind" yaml:"kind"`

	// Var and Value apply to every kind except EntryPath.
	Var   string `json:"var,omitempty" yaml:"var,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// EntryPath fields.
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Program string `json:"program,omitempty" yaml:"program,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Sep is the separator recorded on EntryCustomPart entries.
	Sep string `json:"separator,omitempty" yaml:"separator,omitempty"`
}

// NewPathEntry builds a structured PATH part.
func NewPathEntry(path, program, version string) Entry {
	return Entry{Kind: EntryPath, Path: path, Program: program, Version: version}
}

// NewBuiltinEntry builds a part for a non-PATH built-in variable.
func NewBuiltinEntry(name, value string) Entry {
	return Entry{Kind: EntryBuiltin, Var: name, Value: value}
}

// NewCustomScalar builds a single-valued part for a custom variable.
func NewCustomScalar(name, value string) Entry {
	return Entry{Kind: EntryCustomScalar, Var: name, Value: value}
}

// NewCustomPart builds a list part for a custom variable, recording the
// separator on the entry itself.
func NewCustomPart(name, value, separator string) Entry {
	return Entry{Kind: EntryCustomPart, Var: name, Value: value, Sep: separator}
}

// NewPartEntry builds the right entry variant for a value contributed to
// name, resolved through the catalog: PATH gets a structured path entry,
// other built-ins a builtin entry, known customs a scalar or part per their
// kind, and unknown names a colon-joined custom part.
func NewPartEntry(catalog *vars.Catalog, name, value string) Entry {
	if name == "PATH" {
		return NewPathEntry(value, "", "")
	}
	if vars.IsBuiltin(name) {
		return NewBuiltinEntry(name, value)
	}
	d := catalog.Lookup(name)
	if catalog.Known(name) && d.Kind == vars.KindScalar {
		return NewCustomScalar(name, value)
	}
	return NewCustomPart(name, value, d.Separator)
}

// VariableName returns the variable this entry contributes to.
func (e Entry) VariableName() string {
	if e.Kind == EntryPath {
		return "PATH"
	}
	return e.Var
}

// Separator returns the join separator this entry was recorded under.
// Built-in entries resolve through the fixed table; custom parts carry
// their own; scalars join with the empty string.
func (e Entry) Separator() string {
	switch e.Kind {
	case EntryPath:
		return ":"
	case EntryBuiltin:
		return builtinSeparator(e.Var)
	case EntryCustomScalar:
		return ""
	case EntryCustomPart:
		return e.Sep
	default:
		return vars.DefaultSeparator
	}
}

// DisplayValue returns the value used for previews, diagnostics and joining;
// for path entries this is the path field.
func (e Entry) DisplayValue() string {
	if e.Kind == EntryPath {
		return e.Path
	}
	return e.Value
}

// String renders the list form "<VAR>: <value>"; path entries append the
// program and version labels.
func (e Entry) String() string {
	if e.Kind == EntryPath {
		return fmt.Sprintf("PATH: %s (%s %s)", e.Path, e.Program, e.Version)
	}
	return fmt.Sprintf("%s: %s", e.VariableName(), e.Value)
}

func builtinSeparator(name string) string {
	for _, d := range vars.Builtins() {
		if d.Name == name {
			return d.Separator
		}
	}
	return vars.DefaultSeparator
}
