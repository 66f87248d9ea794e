// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes fixturetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fixturetools"
)

const serverInstructions = `fixturetools MCP server — replaces volatile fields in captured test fixtures with stable dummy values.

Configuration: All defaults are configurable via FIXTURETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- FIXTURETOOLS_CHANGE_LIMIT (default: 100) — default page size for change lists
- FIXTURETOOLS_MAX_LIMIT (default: 1000) — cap on client-requested limits
- FIXTURETOOLS_COUNTER_VALUE — override the numeric replacement for count-like fields

Stabilization: Rules are evaluated in table order; the first match wins. Patterns containing '.' match against the full dotted field path, otherwise against the bare field name. Any numeric value beneath a field whose name contains "count" is normalized. Use list_rules to inspect the table.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "fixturetools", Version: fixturetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "stabilize_fixture",
		Description: "Replace volatile fields (timestamps, session IDs, signed keys, view counters, rotating content) in a test fixture with stable dummy values. Accepts a file path or inline JSON/YAML content. Returns the list of applied changes with dotted paths. Use include_document=true to get the stabilized document inline, or output to write it to a file. Custom rules can be appended via extra_rules; built-in rules keep precedence. Use offset/limit to paginate the change list.",
	}, handleStabilize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_rules",
		Description: "List the built-in stabilization rule table in evaluation order. Each rule has a pattern, a match mode (Exact or Substring), and the replacement value. Substring rules match case-insensitively; patterns containing '.' match the full dotted path.",
	}, handleListRules)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ChangeLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ChangeLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
