// Package vars defines the variable catalog: the fixed table of built-in
// toolchain variables plus the registry of user-defined custom variables,
// resolved through a single lookup order (built-ins first, then custom
// definitions, then an unknown-variable default).
package vars

import (
	"fmt"
	"strings"
)

// Kind classifies how a variable combines multiple parts.
type Kind int

const (
	// KindScalar variables hold one logical value; the editing layer
	// replaces parts rather than accumulating them.
	KindScalar Kind = iota
	// KindList variables join their parts with the descriptor's separator.
	KindList
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as
// "scalar"/"list" in both JSON and YAML.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "scalar":
		*k = KindScalar
	case "list":
		*k = KindList
	default:
		return fmt.Errorf("unknown variable kind: %q", string(text))
	}
	return nil
}

// DefaultSeparator is the join separator assumed for variables the catalog
// has never heard of.
const DefaultSeparator = ":"

// Descriptor describes one environment variable the engine knows how to
// compose: its name, whether it is scalar or list shaped, and the string
// used to join list parts.
type Descriptor struct {
	Name      string
	Kind      Kind
	Separator string
}

// CustomDef is a user-defined variable descriptor. Definitions are persisted
// keyed by name and merged into the catalog behind the built-ins.
type CustomDef struct {
	Name      string `json:"name" yaml:"name"`
	Kind      Kind   `json:"kind" yaml:"kind"`
	Separator string `json:"separator" yaml:"separator"`
}

// Descriptor converts the definition to a catalog descriptor. Scalar
// definitions always carry an empty separator, whatever the stored value.
func (d CustomDef) Descriptor() Descriptor {
	sep := d.Separator
	if d.Kind == KindScalar {
		sep = ""
	}
	return Descriptor{Name: d.Name, Kind: d.Kind, Separator: sep}
}

// builtins is the fixed table, in canonical picker order.
var builtins = []Descriptor{
	{Name: "PATH", Kind: KindList, Separator: ":"},
	{Name: "CPATH", Kind: KindList, Separator: ":"},
	{Name: "C_INCLUDE_PATH", Kind: KindList, Separator: ":"},
	{Name: "CPLUS_INCLUDE_PATH", Kind: KindList, Separator: ":"},
	{Name: "OBJC_INCLUDE_PATH", Kind: KindList, Separator: ":"},
	{Name: "LIBRARY_PATH", Kind: KindList, Separator: ":"},
	{Name: "LD_LIBRARY_PATH", Kind: KindList, Separator: ":"},
	{Name: "LD_RUN_PATH", Kind: KindList, Separator: ":"},
	{Name: "CPPFLAGS", Kind: KindList, Separator: " "},
	{Name: "CFLAGS", Kind: KindList, Separator: " "},
	{Name: "CXXFLAGS", Kind: KindList, Separator: " "},
	{Name: "LDFLAGS", Kind: KindList, Separator: " "},
	{Name: "RANLIB", Kind: KindScalar, Separator: ""},
	{Name: "CC", Kind: KindScalar, Separator: ""},
	{Name: "CXX", Kind: KindScalar, Separator: ""},
	{Name: "AR", Kind: KindScalar, Separator: ""},
	{Name: "STRIP", Kind: KindScalar, Separator: ""},
	{Name: "GCC_EXEC_PREFIX", Kind: KindScalar, Separator: ""},
	{Name: "COLLECT_GCC_OPTIONS", Kind: KindScalar, Separator: ""},
	{Name: "LANG", Kind: KindScalar, Separator: ""},
}

// Builtins returns a copy of the built-in descriptor table in canonical
// order. Callers may not mutate catalog state through the result.
func Builtins() []Descriptor {
	out := make([]Descriptor, len(builtins))
	copy(out, builtins)
	return out
}

// IsBuiltin reports whether name is one of the fixed built-in variables.
func IsBuiltin(name string) bool {
	for _, d := range builtins {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Catalog resolves variable names to descriptors. Lookup order: built-ins,
// then custom definitions, then the unknown-variable default (a list joined
// with ":"). Custom definitions shadowed by a built-in of the same name are
// unreachable through Lookup.
type Catalog struct {
	custom      map[string]Descriptor
	customOrder []string
}

// NewCatalog returns a catalog with no custom definitions loaded.
func NewCatalog() *Catalog {
	return &Catalog{custom: make(map[string]Descriptor)}
}

// Refresh replaces the catalog's custom registry with defs. It is invoked by
// the persistence boundary after every write to custom definitions, keeping
// the merged view derived state rather than ambient mutation.
func (c *Catalog) Refresh(defs []CustomDef) {
	c.custom = make(map[string]Descriptor, len(defs))
	c.customOrder = c.customOrder[:0]
	for _, def := range defs {
		if _, dup := c.custom[def.Name]; dup {
			continue
		}
		c.custom[def.Name] = def.Descriptor()
		c.customOrder = append(c.customOrder, def.Name)
	}
}

// Lookup resolves name to a descriptor. Unknown names resolve to a
// colon-separated list so that aggregation stays total.
func (c *Catalog) Lookup(name string) Descriptor {
	for _, d := range builtins {
		if d.Name == name {
			return d
		}
	}
	if d, ok := c.custom[name]; ok {
		return d
	}
	return Descriptor{Name: name, Kind: KindList, Separator: DefaultSeparator}
}

// Known reports whether name resolves to a built-in or custom descriptor,
// as opposed to the unknown-variable fallback.
func (c *Catalog) Known(name string) bool {
	if IsBuiltin(name) {
		return true
	}
	_, ok := c.custom[name]
	return ok
}

// Descriptors returns the merged picker list: built-ins in canonical order,
// then custom definitions in registration order, skipping customs shadowed
// by a built-in name.
func (c *Catalog) Descriptors() []Descriptor {
	out := Builtins()
	for _, name := range c.customOrder {
		if IsBuiltin(name) {
			continue
		}
		out = append(out, c.custom[name])
	}
	return out
}
