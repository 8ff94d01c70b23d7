package export

import (
	"fmt"
	"strings"

	"benv/pkg/profile"
)

// Escape escapes s for interpolation inside a double-quoted POSIX shell
// string: `\` becomes `\\` and `"` becomes `\"`; every other byte passes
// through, including `$` and backtick. The pass-through is deliberate:
// stored values may contain references like `$HOME/bin` that must expand
// when the generated statement is evaluated. Single-pass contract — callers
// escape each raw value exactly once.
func Escape(s string) string {
	if !strings.ContainsAny(s, `\"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Render emits the single terminated statement for one aggregated
// assignment under mode. The value region is escaped; the separator inside
// the ${VAR:+...} expansion is raw shell text, not user data. The `:+`
// (set-and-non-empty) form keeps an unset or empty existing variable from
// leaving a stray leading or trailing separator.
func Render(a Assignment, mode Mode) string {
	v := Escape(a.Value)
	switch mode {
	case ModeReplace:
		return fmt.Sprintf(`export %s="%s";`, a.Var, v)
	case ModeAppend:
		return fmt.Sprintf(`export %s="${%s:+${%s}%s}%s";`, a.Var, a.Var, a.Var, a.Separator, v)
	default:
		return fmt.Sprintf(`export %s="%s${%s:+%s${%s}}";`, a.Var, v, a.Var, a.Separator, a.Var)
	}
}

// Statements renders a profile's full statement sequence: one statement per
// distinct variable, in first-seen order.
func Statements(p profile.Profile, mode Mode) []string {
	asgs := Aggregate(p)
	out := make([]string, len(asgs))
	for i, a := range asgs {
		out[i] = Render(a, mode)
	}
	return out
}

// Script joins the statement sequence with newlines for printing. Each
// statement carries its own `;` terminator, so the result stays valid under
// `eval $(benv export ...)` even when the newlines collapse to spaces.
func Script(p profile.Profile, mode Mode) string {
	return strings.Join(Statements(p, mode), "\n")
}
