package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/fixturetools/internal/cliutil"
	"github.com/erraggy/fixturetools/stabilizer"
)

// RulesFlags contains flags for the rules command
type RulesFlags struct {
	Format string
}

// ruleInfo is the structured representation of a rule for json/yaml output.
type ruleInfo struct {
	Pattern     string `json:"pattern"               yaml:"pattern"`
	Mode        string `json:"mode"                  yaml:"mode"`
	Replacement any    `json:"replacement"           yaml:"replacement"`
}

// SetupRulesFlags creates and configures a FlagSet for the rules command.
// Returns the FlagSet and a RulesFlags struct with bound flag variables.
func SetupRulesFlags() (*flag.FlagSet, *RulesFlags) {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	flags := &RulesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: fixturetools rules [flags]\n\n")
		cliutil.Writef(fs.Output(), "Print the built-in stabilization rule table in evaluation order.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  fixturetools rules\n")
		cliutil.Writef(fs.Output(), "  fixturetools rules --format json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Rules are evaluated top to bottom; the first match wins\n")
		cliutil.Writef(fs.Output(), "  - Substring rules match case-insensitively\n")
		cliutil.Writef(fs.Output(), "  - Patterns containing '.' match against the full dotted path\n")
	}

	return fs, flags
}

// HandleRules executes the rules command
func HandleRules(args []string) error {
	fs, flags := SetupRulesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("rules command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	rules := stabilizer.DefaultRules()

	if flags.Format != FormatText {
		infos := make([]ruleInfo, len(rules))
		for i, r := range rules {
			infos[i] = ruleInfo{
				Pattern:     r.Pattern,
				Mode:        r.Mode.String(),
				Replacement: r.Replacement,
			}
		}
		return OutputStructured(infos, flags.Format)
	}

	cliutil.Writef(os.Stdout, "Stabilization Rules (%d, first match wins):\n\n", len(rules))
	for i, r := range rules {
		cliutil.Writef(os.Stdout, "  %2d. %-24s %-10s -> %v\n", i+1, r.Pattern, r.Mode, r.Replacement)
	}
	return nil
}
