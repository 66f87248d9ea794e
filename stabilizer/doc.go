// Package stabilizer rewrites volatile fields in captured API-response
// fixtures so that repeated captures produce byte-identical documents.
//
// The engine is a rule-driven, path-aware recursive walk over a generic
// value tree (map[string]any, []any, and scalars). At every field it
// consults an ordered rule table; the first matching rule replaces the
// value — including whole subtrees — before any further descent. Fields
// whose ancestry includes a name containing "count" get a fallback
// normalization: any numeric leaf below them becomes a fixed counter
// constant, so open-ended families of counters (view counts, like counts,
// comment counts) stabilize without per-field rules.
//
// # Quick Start
//
// Stabilize a fixture file using functional options:
//
//	result, err := stabilizer.StabilizeWithOptions(
//		stabilizer.WithFilePath("watch.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Replaced %d fields\n", result.ChangeCount)
//
// Or use a reusable Stabilizer instance:
//
//	s := stabilizer.New()
//	result1, _ := s.Stabilize("watch.json")
//	result2, _ := s.Stabilize("ranking.yaml")
//
// # Rules
//
// A rule targets either a bare field name ("serverTime") or, when its
// pattern contains a dot, the full dotted ancestry path
// ("watch_data.waku.information"). Exact rules compare case-sensitively;
// substring rules match case-insensitive containment. Rules are evaluated
// in table order and the first match wins; a matching rule pre-empts
// recursion, so a rule can discard an entire nested subtree by replacing
// it with null.
//
// DefaultRules returns the built-in table covering the volatile fields of
// the upstream service: timestamps, session and track identifiers, signed
// keys, streaming URLs, promotional banner payloads, and view counters.
//
// # Typed Records
//
// StabilizeRecord round-trips a typed record through its JSON
// representation: field names resolve to their serialized aliases, the
// generic tree is stabilized, and the result is decoded back into the
// record's type. Decoding failure means a replacement value was
// incompatible with the record's schema and surfaces as a
// *staberrors.ReconstructError.
//
// # Purity and Concurrency
//
// Stabilization never mutates its input: containers are rebuilt and rule
// replacements are deep-copied out of the table. A Stabilizer holds no
// per-call state, so a single instance may be used from multiple
// goroutines concurrently.
//
// # Related Packages
//
//   - [github.com/erraggy/fixturetools/fixture] - parse fixture files and
//     re-serialize them with source key order preserved
//   - [github.com/erraggy/fixturetools/staberrors] - structured error types
package stabilizer
