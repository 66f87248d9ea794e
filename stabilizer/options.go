package stabilizer

import (
	"fmt"

	"github.com/erraggy/fixturetools/fixture"
	"github.com/erraggy/fixturetools/internal/options"
)

// Option is a function that configures a stabilize operation
type Option func(*stabilizeConfig) error

// stabilizeConfig holds configuration for a stabilize operation
type stabilizeConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *fixture.ParseResult

	// Configuration options
	rules        []Rule
	extraRules   []Rule
	counterValue any
	maxDepth     int
	logger       fixture.Logger
}

// StabilizeWithOptions stabilizes a fixture document using functional
// options. This provides a flexible, extensible API that combines input
// source selection and configuration in a single function call.
//
// Example:
//
//	result, err := stabilizer.StabilizeWithOptions(
//	    stabilizer.WithFilePath("watch.json"),
//	    stabilizer.WithExtraRules(stabilizer.Rule{
//	        Pattern:     "requestId",
//	        Replacement: "dummy-request-id",
//	    }),
//	)
func StabilizeWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("stabilizer: invalid options: %w", err)
	}

	rules := cfg.rules
	if len(cfg.extraRules) > 0 {
		if rules == nil {
			rules = DefaultRules()
		}
		rules = append(rules, cfg.extraRules...)
	}

	s := &Stabilizer{
		Rules:        rules,
		CounterValue: cfg.counterValue,
		MaxDepth:     cfg.maxDepth,
		Logger:       cfg.logger,
	}

	// Route to appropriate stabilize method based on input source
	if cfg.filePath != nil {
		return s.Stabilize(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return s.StabilizeParsed(*cfg.parsed)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("stabilizer: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*stabilizeConfig, error) {
	cfg := &stabilizeConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate that exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"stabilizer", "use WithFilePath or WithParsed",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a fixture file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *stabilizeConfig) error {
		if path == "" {
			return fmt.Errorf("stabilizer: file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already-parsed fixture as the input source
func WithParsed(parsed fixture.ParseResult) Option {
	return func(cfg *stabilizeConfig) error {
		cfg.parsed = &parsed
		return nil
	}
}

// WithRules replaces the default rule table entirely.
// Default: DefaultRules()
func WithRules(rules []Rule) Option {
	return func(cfg *stabilizeConfig) error {
		cfg.rules = rules
		return nil
	}
}

// WithExtraRules appends rules after the base table. The base rules keep
// precedence on conflicts since the first matching rule wins.
func WithExtraRules(rules ...Rule) Option {
	return func(cfg *stabilizeConfig) error {
		cfg.extraRules = append(cfg.extraRules, rules...)
		return nil
	}
}

// WithCounterValue sets the replacement for numeric values in count context.
// Default: DummyCount
func WithCounterValue(v any) Option {
	return func(cfg *stabilizeConfig) error {
		cfg.counterValue = v
		return nil
	}
}

// WithMaxDepth bounds the recursion depth of the walk.
// Default: DefaultMaxDepth
func WithMaxDepth(depth int) Option {
	return func(cfg *stabilizeConfig) error {
		if depth < 0 {
			return fmt.Errorf("stabilizer: max depth cannot be negative")
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger used for structured diagnostics.
// Default: NopLogger
func WithLogger(logger fixture.Logger) Option {
	return func(cfg *stabilizeConfig) error {
		cfg.logger = logger
		return nil
	}
}
