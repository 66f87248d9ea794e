package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/fixturetools"
	"github.com/erraggy/fixturetools/fixture"
	"github.com/erraggy/fixturetools/internal/cliutil"
	"github.com/erraggy/fixturetools/stabilizer"
)

// StabilizeFlags contains flags for the stabilize command
type StabilizeFlags struct {
	Output      string
	Quiet       bool
	Indent      string
	ListChanges bool
}

// SetupStabilizeFlags creates and configures a FlagSet for the stabilize command.
// Returns the FlagSet and a StabilizeFlags struct with bound flag variables.
func SetupStabilizeFlags() (*flag.FlagSet, *StabilizeFlags) {
	fs := flag.NewFlagSet("stabilize", flag.ContinueOnError)
	flags := &StabilizeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.StringVar(&flags.Indent, "indent", "  ", "JSON output indentation (empty string for compact output)")
	fs.BoolVar(&flags.ListChanges, "list-changes", false, "list every applied replacement with its dotted path")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: fixturetools stabilize [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Replace volatile fields in a test fixture with stable dummy values.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nStabilized Fields:\n")
		cliutil.Writef(fs.Output(), "  - Timestamps (serverTime, registeredAt, lastViewedAt)\n")
		cliutil.Writef(fs.Output(), "  - Session identifiers and signed keys (nicosid, threadKey, ...)\n")
		cliutil.Writef(fs.Output(), "  - View and comment counters (views, any *count* field)\n")
		cliutil.Writef(fs.Output(), "  - Rotating content (descriptions, thumbnails, ad wakus)\n")
		cliutil.Writef(fs.Output(), "  Run 'fixturetools rules' for the full rule table.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  fixturetools stabilize watch.json\n")
		cliutil.Writef(fs.Output(), "  fixturetools stabilize -o stable.json watch.json\n")
		cliutil.Writef(fs.Output(), "  fixturetools stabilize --list-changes watch.json\n")
		cliutil.Writef(fs.Output(), "  cat watch.json | fixturetools stabilize -q - > stable.json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Output preserves the original format (JSON or YAML) and key order\n")
		cliutil.Writef(fs.Output(), "  - Stabilizing an already-stable fixture is a no-op\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Fixture stabilized successfully (or no changes needed)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to parse or stabilize the fixture\n")
	}

	return fs, flags
}

// HandleStabilize executes the stabilize command
func HandleStabilize(args []string) error {
	fs, flags := SetupStabilizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("stabilize command requires exactly one file path or '-' for stdin")
	}

	fixturePath := fs.Arg(0)

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{fixturePath}); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(filepath.Clean(flags.Output)); err != nil {
			return err
		}
	}

	// Stabilize the file or stdin with timing
	startTime := time.Now()
	var result *stabilizer.Result
	var err error

	if fixturePath == StdinFilePath {
		parsed, parseErr := fixture.ParseWithOptions(
			fixture.WithReader(os.Stdin),
			fixture.WithPreserveOrder(true),
			fixture.WithSourceName("<stdin>"),
		)
		if parseErr != nil {
			return fmt.Errorf("parsing stdin: %w", parseErr)
		}
		result, err = stabilizer.StabilizeWithOptions(stabilizer.WithParsed(*parsed))
	} else {
		result, err = stabilizer.StabilizeWithOptions(stabilizer.WithFilePath(fixturePath))
	}
	if err != nil {
		return fmt.Errorf("stabilizing fixture: %w", err)
	}
	totalTime := time.Since(startTime)

	// Print diagnostic messages (to stderr to keep stdout clean for pipelining)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Fixture Stabilizer\n")
		cliutil.Writef(os.Stderr, "==================\n\n")
		cliutil.Writef(os.Stderr, "fixturetools version: %s\n", fixturetools.Version())
		cliutil.Writef(os.Stderr, "Fixture: %s\n", FormatFixturePath(fixturePath))
		cliutil.Writef(os.Stderr, "Format: %s\n", result.SourceFormat)
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if flags.ListChanges && result.HasChanges() {
			cliutil.Writef(os.Stderr, "Changes Applied (%d):\n", result.ChangeCount)
			for _, change := range result.Changes {
				if change.Pattern != "" {
					cliutil.Writef(os.Stderr, "  - [%s] %s: %s\n", change.Kind, change.Path, change.Description)
				} else {
					cliutil.Writef(os.Stderr, "  - [%s] %s\n", change.Kind, change.Path)
				}
			}
			cliutil.Writef(os.Stderr, "\n")
		}

		if result.HasChanges() {
			cliutil.Writef(os.Stderr, "✓ Applied %d replacement(s)\n", result.ChangeCount)
		} else {
			cliutil.Writef(os.Stderr, "✓ No changes needed - fixture is already stable\n")
		}
	}

	// Write output
	data, err := result.ToParseResult().Marshal(result.SourceFormat, flags.Indent)
	if err != nil {
		return fmt.Errorf("marshaling stabilized fixture: %w", err)
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
		}
	} else {
		// Write to stdout
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing stabilized fixture to stdout: %w", err)
		}
	}

	return nil
}
