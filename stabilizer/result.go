package stabilizer

import "github.com/erraggy/fixturetools/fixture"

// ChangeKind identifies what triggered a change
type ChangeKind string

const (
	// ChangeKindRule indicates an explicit rule from the table fired
	ChangeKindRule ChangeKind = "rule"
	// ChangeKindCounter indicates the count-context fallback normalized a
	// numeric value
	ChangeKindCounter ChangeKind = "counter"
)

// Change represents a single replacement applied to the document
type Change struct {
	// Kind identifies what triggered the change
	Kind ChangeKind
	// Path is the dotted path to the changed location (e.g.
	// "watch_data.video.count.view"); empty at the document root
	Path string
	// Pattern is the pattern of the rule that fired (empty for counter
	// normalizations)
	Pattern string
	// Description is a human-readable description of the change
	Description string
	// Before is the value prior to the change
	Before any
	// After is the value that was substituted
	After any
}

// Result contains the results of a stabilize operation
type Result struct {
	// Document contains the stabilized value tree
	Document any
	// SourcePath is the path to the source fixture
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat fixture.SourceFormat
	// Changes contains all replacements applied
	Changes []Change
	// ChangeCount is the total number of replacements applied
	ChangeCount int

	// parsed retains the source parse result so ordered re-serialization
	// keeps the original key ordering
	parsed *fixture.ParseResult
}

// HasChanges returns true if any replacements were applied
func (r *Result) HasChanges() bool {
	return r.ChangeCount > 0
}

// ToParseResult returns a fixture.ParseResult carrying the stabilized
// document, suitable for ordered marshaling in the source format.
func (r *Result) ToParseResult() *fixture.ParseResult {
	if r.parsed == nil {
		return &fixture.ParseResult{
			Document:     r.Document,
			SourcePath:   r.SourcePath,
			SourceFormat: r.SourceFormat,
		}
	}
	return r.parsed.WithDocument(r.Document)
}
