// Package fixture parses captured API-response fixture documents and
// re-serializes them with the original key order preserved.
//
// A fixture is a snapshot of a service response stored on disk, in either
// JSON or YAML. The package decodes a fixture into a generic value tree
// (map[string]any, []any, and scalars) that the stabilizer package walks,
// and writes the tree back out in the source format with the source's key
// ordering so that diffs against previous captures stay minimal.
//
// # Quick Start
//
// Parse a fixture file with order preservation:
//
//	result, err := fixture.ParseWithOptions(
//		fixture.WithFilePath("watch.json"),
//		fixture.WithPreserveOrder(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := result.MarshalOrderedJSONIndent("", "  ")
//
// Or use a reusable Parser instance:
//
//	p := fixture.New()
//	p.PreserveOrder = true
//	result1, _ := p.Parse("watch.json")
//	result2, _ := p.Parse("ranking.yaml")
//
// # Order Preservation
//
// Go maps do not retain insertion order, so the parser optionally keeps the
// source yaml.Node tree alongside the decoded document. The MarshalOrdered*
// methods walk the node tree for key order while taking values from the
// (possibly rewritten) document, falling back to standard marshaling for
// subtrees whose shape no longer matches the source.
//
// # Related Packages
//
//   - [github.com/erraggy/fixturetools/stabilizer] - rewrite volatile fields
//     in a parsed fixture
//   - [github.com/erraggy/fixturetools/staberrors] - structured error types
package fixture
