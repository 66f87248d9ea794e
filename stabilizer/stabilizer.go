package stabilizer

import (
	"fmt"
	"reflect"

	"github.com/erraggy/fixturetools/fixture"
	"github.com/erraggy/fixturetools/internal/stringutil"
)

// DefaultMaxDepth bounds the recursion depth of the walk. Fixture documents
// are service responses, so legitimate nesting is shallow; anything near the
// limit indicates a pathological or hostile input.
const DefaultMaxDepth = 1000

// countKeyword marks a field as count-like when contained in its name.
// The flag propagates to every descendant, so a count field holding a
// nested object of sub-counts stabilizes all of them.
const countKeyword = "count"

// Stabilizer applies stabilization rules to fixture documents
type Stabilizer struct {
	// Rules is the ordered rule table. Nil means DefaultRules().
	Rules []Rule

	// CounterValue replaces numeric values found in count context.
	// Nil means DummyCount.
	CounterValue any

	// MaxDepth bounds the recursion depth (0 means DefaultMaxDepth).
	// Subtrees nested deeper than the limit are left unmodified.
	MaxDepth int

	// Logger receives structured diagnostics. Defaults to NopLogger.
	Logger fixture.Logger
}

// New creates a new Stabilizer with default settings
func New() *Stabilizer {
	return &Stabilizer{}
}

// log returns the configured logger or NopLogger
func (s *Stabilizer) log() fixture.Logger {
	if s.Logger == nil {
		return fixture.NopLogger{}
	}
	return s.Logger
}

func (s *Stabilizer) rules() []Rule {
	if s.Rules == nil {
		return defaultRules
	}
	return s.Rules
}

func (s *Stabilizer) counterValue() any {
	if s.CounterValue == nil {
		return DummyCount
	}
	return s.CounterValue
}

func (s *Stabilizer) maxDepth() int {
	if s.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return s.MaxDepth
}

// Stabilize parses a fixture file and stabilizes its document. The parse
// preserves source ordering so the result can be re-serialized with
// minimal diff against the capture.
func (s *Stabilizer) Stabilize(path string) (*Result, error) {
	parsed, err := fixture.ParseWithOptions(
		fixture.WithFilePath(path),
		fixture.WithPreserveOrder(true),
		fixture.WithLogger(s.Logger),
	)
	if err != nil {
		return nil, err
	}
	return s.StabilizeParsed(*parsed)
}

// StabilizeParsed stabilizes an already-parsed fixture document.
// The parse result is not modified.
func (s *Stabilizer) StabilizeParsed(parsed fixture.ParseResult) (*Result, error) {
	doc, changes := s.StabilizeValueReport(parsed.Document)
	s.log().Debug("stabilized document",
		"source", parsed.SourcePath, "changes", len(changes))
	return &Result{
		Document:     doc,
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		Changes:      changes,
		ChangeCount:  len(changes),
		parsed:       &parsed,
	}, nil
}

// StabilizeValue stabilizes a generic value tree and returns the rewritten
// tree. The input is never mutated: containers are rebuilt and rule
// replacements are deep-copied. Values that are neither containers nor
// JSON-compatible scalars pass through unchanged.
func (s *Stabilizer) StabilizeValue(v any) any {
	return s.stabilizeValue("", v, false, "", 0, nil)
}

// StabilizeValueReport is StabilizeValue plus a record of every
// replacement applied, in document-walk order. Re-running the stabilizer
// over its own output reports no changes.
func (s *Stabilizer) StabilizeValueReport(v any) (any, []Change) {
	var changes []Change
	out := s.stabilizeValue("", v, false, "", 0, &changes)
	return out, changes
}

// stabilizeValue visits a single value recursively.
//
// key is the field name of the value being visited ("" at the root), path
// its full dotted ancestry, and inCountContext whether any ancestor field
// name contained countKeyword. Rule evaluation precedes structural
// handling, so a matching rule replaces an entire subtree before recursion
// would descend into it.
func (s *Stabilizer) stabilizeValue(key string, value any, inCountContext bool, path string, depth int, changes *[]Change) any {
	// 1. Check explicit rules first
	for _, rule := range s.rules() {
		if rule.Matches(key, path) {
			replacement := cloneValue(rule.Replacement)
			if changes != nil && !sameValue(value, replacement) {
				*changes = append(*changes, Change{
					Kind:        ChangeKindRule,
					Path:        path,
					Pattern:     rule.Pattern,
					Description: fmt.Sprintf("replaced by %s rule %q", rule.Mode, rule.Pattern),
					Before:      value,
					After:       replacement,
				})
			}
			return replacement
		}
	}

	// 2. Handle nested structures
	switch v := value.(type) {
	case map[string]any:
		if depth >= s.maxDepth() {
			s.log().Warn("max nesting depth exceeded, subtree left unmodified",
				"path", path, "limit", s.maxDepth())
			return v
		}
		out := make(map[string]any, len(v))
		for k, child := range v {
			childContext := inCountContext || stringutil.ContainsFold(k, countKeyword)
			childPath := k
			if path != "" {
				childPath = path + PathSeparator + k
			}
			out[k] = s.stabilizeValue(k, child, childContext, childPath, depth+1, changes)
		}
		return out
	case []any:
		if depth >= s.maxDepth() {
			s.log().Warn("max nesting depth exceeded, subtree left unmodified",
				"path", path, "limit", s.maxDepth())
			return v
		}
		// Elements keep the sequence's own key, path, and count context;
		// the index never participates in matching.
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = s.stabilizeValue(key, item, inCountContext, path, depth+1, changes)
		}
		return out
	}

	// 3. Handle count values
	if inCountContext && isNumber(value) {
		counter := s.counterValue()
		if changes != nil && !sameValue(value, counter) {
			*changes = append(*changes, Change{
				Kind:        ChangeKindCounter,
				Path:        path,
				Description: "normalized counter value",
				Before:      value,
				After:       counter,
			})
		}
		return counter
	}

	return value
}

// isNumber reports whether v is an integer or floating-point scalar.
// Booleans are deliberately excluded from count normalization.
func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// asFloat converts a numeric scalar to float64 for comparison.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// sameValue reports whether before and after would serialize identically.
// Numbers compare numerically so that an int 1 from YAML and a float64 1
// from JSON do not report as a change; everything else compares deeply.
func sameValue(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// cloneValue deep-copies container values so rule replacements handed to
// callers never alias the rule table.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = cloneValue(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = cloneValue(child)
		}
		return out
	default:
		return v
	}
}
