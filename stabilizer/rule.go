package stabilizer

import (
	"fmt"
	"strings"

	"github.com/erraggy/fixturetools/internal/stringutil"
)

// PathSeparator joins field names into dotted ancestry paths. A rule whose
// pattern contains the separator matches against the full path instead of
// the bare field name.
const PathSeparator = "."

// MatchMode controls how a rule's pattern is compared against a field name
// or path.
type MatchMode int

const (
	// MatchExact requires case-sensitive full equality with the target.
	MatchExact MatchMode = iota

	// MatchSubstring requires case-insensitive containment of the pattern
	// inside the target.
	MatchSubstring
)

// IsValid returns true if the mode is one of the defined constants.
func (m MatchMode) IsValid() bool {
	return m >= MatchExact && m <= MatchSubstring
}

// String returns a string representation of the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "Exact"
	case MatchSubstring:
		return "Substring"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// Rule describes one stabilization: a target pattern, a fixed replacement
// value, and a match mode. Replacement is any JSON-compatible value —
// nil, bool, number, string, []any, or map[string]any — substituted
// verbatim when the rule fires, so a rule can replace an entire subtree.
//
// Rules are value types and never modified after construction; the engine
// deep-copies container replacements on every application.
type Rule struct {
	// Pattern is the target to match. Interpreted as a dotted-path pattern
	// if it contains PathSeparator, otherwise as a bare field-name pattern.
	Pattern string

	// Replacement is substituted for the matched value.
	Replacement any

	// Mode selects exact or substring comparison.
	Mode MatchMode
}

// Matches reports whether the rule fires for a field.
//
// The stabilizer walks nested documents, so rules can match either a single
// field name (e.g. "serverTime") or a dotted path (e.g.
// "watch_data.waku.information"). Patterns containing PathSeparator compare
// against the full dotted ancestry path; all others compare against the
// current field name alone.
func (r Rule) Matches(fieldName, path string) bool {
	target := fieldName
	if strings.Contains(r.Pattern, PathSeparator) {
		target = path
	}
	if r.Mode == MatchSubstring {
		return stringutil.ContainsFold(target, r.Pattern)
	}
	return r.Pattern == target
}
