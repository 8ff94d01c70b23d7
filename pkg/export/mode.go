// Package export implements the export-composition engine. It aggregates a
// profile's stored parts into one logical value per variable (first-seen
// order, joined with the variable's separator), escapes that value for a
// double-quoted POSIX shell string, and renders one terminated `export`
// statement per variable that combines the new value with whatever the
// invoking shell already holds, by prepend, append, or replace.
//
// The engine is pure: no I/O, no shared state, total over any profile value.
package export

import "strings"

// Mode selects how an aggregated value combines with the live shell value
// of the same variable at evaluation time.
type Mode int

const (
	// ModePrepend puts the new value first, keeping the existing value
	// behind it when the variable is set and non-empty.
	ModePrepend Mode = iota
	// ModeAppend keeps the existing value first.
	ModeAppend
	// ModeReplace discards the existing value entirely.
	ModeReplace
)

// String returns the mode token.
func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeReplace:
		return "replace"
	default:
		return "prepend"
	}
}

// ParseMode maps a mode token to a Mode. Unknown or empty tokens fall back
// to ModePrepend; the CLI contract treats bad tokens as the default rather
// than an error.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "append":
		return ModeAppend
	case "replace":
		return ModeReplace
	default:
		return ModePrepend
	}
}
