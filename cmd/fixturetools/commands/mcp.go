package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/fixturetools/internal/cliutil"
	"github.com/erraggy/fixturetools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: fixturetools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the fixturetools MCP server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes stabilize_fixture and list_rules tools to MCP\n")
		cliutil.Writef(fs.Output(), "clients. Defaults are configurable via FIXTURETOOLS_* environment\n")
		cliutil.Writef(fs.Output(), "variables set in your MCP client configuration.\n\n")
		cliutil.Writef(fs.Output(), "Example client config:\n")
		cliutil.Writef(fs.Output(), "  {\"command\": \"fixturetools\", \"args\": [\"mcp\"]}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
