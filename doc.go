// Package fixturetools provides tools for stabilizing volatile fields in
// captured API-response fixtures so that repeated captures stay byte-identical.
//
// Services return time-varying values in their responses: server timestamps,
// view counters, promotional banner payloads, signed tokens. When responses
// are captured as test fixtures, those values churn on every capture and bury
// meaningful diffs in noise. fixturetools rewrites the volatile fields to
// fixed constants while leaving every other value and the document shape
// untouched.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - stabilizer: the rule-driven stabilization engine — a path-aware
//     recursive walk over a parsed document that replaces targeted fields
//   - fixture: parse fixture snapshots (JSON or YAML) and re-serialize them
//     with the original key order preserved
//   - staberrors: structured error types usable with errors.Is and errors.As
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/fixturetools
//
// # Quick Start
//
// Stabilize a fixture file:
//
//	import "github.com/erraggy/fixturetools/stabilizer"
//
//	result, err := stabilizer.StabilizeWithOptions(
//		stabilizer.WithFilePath("watch.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Replaced %d fields\n", result.ChangeCount)
//
// Stabilize a typed record in memory:
//
//	s := stabilizer.New()
//	stable, err := stabilizer.StabilizeRecord(s, response)
//
// # CLI
//
// The fixturetools command wraps the library for pipeline use:
//
//	fixturetools stabilize watch.json -o fixtures/watch.json
//	cat watch.json | fixturetools stabilize -q - > stable.json
//	fixturetools rules
//
// An MCP server exposing the same capabilities over stdio is available via
// the mcp subcommand.
package fixturetools
