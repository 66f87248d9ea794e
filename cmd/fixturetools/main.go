package main

import (
	"fmt"
	"os"

	"github.com/erraggy/fixturetools"
	"github.com/erraggy/fixturetools/cmd/fixturetools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("fixturetools v%s\n", fixturetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "stabilize":
		if err := commands.HandleStabilize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "rules":
		if err := commands.HandleRules(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every accepted subcommand for typo suggestions.
var knownCommands = []string{"stabilize", "rules", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`fixturetools - Test Fixture Stabilization Tools

Usage:
  fixturetools <command> [options]

Commands:
  stabilize   Replace volatile fields in a fixture file with stable values
  rules       Print the built-in stabilization rule table
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  fixturetools stabilize watch.json
  fixturetools stabilize -o stable.json --list-changes watch.json
  cat watch.json | fixturetools stabilize -q - > stable.json
  fixturetools rules --format json

Run 'fixturetools <command> --help' for more information on a command.`)
}
