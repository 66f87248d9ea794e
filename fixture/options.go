package fixture

import (
	"fmt"
	"io"

	"github.com/erraggy/fixturetools/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	preserveOrder bool
	maxFileSize   int64
	logger        Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses a fixture document using functional options.
// This provides a flexible, extensible API that combines input source
// selection and configuration in a single function call.
//
// Example:
//
//	result, err := fixture.ParseWithOptions(
//	    fixture.WithFilePath("watch.json"),
//	    fixture.WithPreserveOrder(true),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fixture: invalid options: %w", err)
	}

	p := &Parser{
		PreserveOrder: cfg.preserveOrder,
		MaxFileSize:   cfg.maxFileSize,
		Logger:        cfg.logger,
	}

	// Route to appropriate parsing method based on input source
	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("fixture: no input source specified")
	}

	if parseErr != nil {
		return result, parseErr
	}

	// Apply source name override if specified
	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"fixture", "use WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return fmt.Errorf("fixture: file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("fixture: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("fixture: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithPreserveOrder enables order-preserving parsing.
// Default: false
func WithPreserveOrder(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.preserveOrder = enabled
		return nil
	}
}

// WithMaxFileSize sets the maximum accepted source size in bytes.
// Default: DefaultMaxFileSize
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("fixture: max file size cannot be negative")
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithLogger sets the logger used for structured diagnostics.
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithSourceName overrides SourcePath in the result. Useful when parsing
// from a reader or bytes while keeping a meaningful source identifier for
// error messages and diagnostics.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
