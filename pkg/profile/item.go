package profile

import (
	"fmt"
	"strings"
)

// Item is a reusable PATH entry kept in the catalog independently of any
// profile. Stamping an item into a profile copies it as a path entry; the
// copy keeps no link back to the item.
type Item struct {
	// ID is assigned by the store from its sequence and lives in the
	// record key, not the serialized value.
	ID uint64 `json:"-" yaml:"-"`

	Path    string   `json:"path" yaml:"path"`
	Program string   `json:"program" yaml:"program"`
	Version string   `json:"version" yaml:"version"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Entry materializes the item as a profile path entry.
func (it Item) Entry() Entry {
	return NewPathEntry(it.Path, it.Program, it.Version)
}

// String renders the list form "<path> (<program> <version>)".
func (it Item) String() string {
	return fmt.Sprintf("%s (%s %s)", it.Path, it.Program, it.Version)
}

// TagLine renders the tags as a comma-joined string for detail panes.
func (it Item) TagLine() string {
	return strings.Join(it.Tags, ", ")
}
