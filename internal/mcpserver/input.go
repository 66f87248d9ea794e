package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/fixturetools/fixture"
)

// fixtureInput represents the two ways a fixture can be provided to a tool.
// Exactly one of File or Content must be set.
type fixtureInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a fixture file on disk (JSON or YAML)"`
	Content string `json:"content,omitempty" jsonschema:"Inline fixture content (JSON or YAML)"`
}

// resolve parses the fixture from whichever source is set. Parsing preserves
// source key order so stabilized output diffs cleanly against the capture.
func (in fixtureInput) resolve() (*fixture.ParseResult, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("provide either file or content, not both")
	case in.File != "":
		return fixture.ParseWithOptions(
			fixture.WithFilePath(in.File),
			fixture.WithPreserveOrder(true),
		)
	case in.Content != "":
		return fixture.ParseWithOptions(
			fixture.WithReader(strings.NewReader(in.Content)),
			fixture.WithPreserveOrder(true),
			fixture.WithSourceName("<inline>"),
		)
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}
