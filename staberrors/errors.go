// Package staberrors provides structured error types for fixturetools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: fixture YAML/JSON parsing failures
//   - ReconstructError: a stabilized tree no longer matched the record's schema
//   - ResourceLimitError: resource exhaustion (nesting depth, file size)
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := stabilizer.StabilizeWithOptions(stabilizer.WithFilePath("watch.json"))
//	if err != nil {
//	    var recErr *staberrors.ReconstructError
//	    if errors.As(err, &recErr) {
//	        log.Printf("record %s broke at %s", recErr.RecordType, recErr.Path)
//	    }
//	}
package staberrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a fixture parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReconstruct indicates a stabilized document could not be decoded
	// back into its original record type.
	ErrReconstruct = errors.New("reconstruct error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a fixture document.
// This includes YAML/JSON deserialization errors and unreadable sources.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReconstructError represents a stabilized value tree that no longer matches
// the schema of the record it was produced from. This happens when a
// replacement value is type-incompatible with the target field — a rule/data
// contract bug, not a transient condition, so it is never retried.
type ReconstructError struct {
	// RecordType is the Go type of the record being reconstructed
	RecordType string
	// Path is the dotted path to the offending field, when known
	Path string
	// Message describes the reconstruction failure
	Message string
	// Cause is the underlying decode error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReconstructError) Error() string {
	msg := "reconstruct error"
	if e.RecordType != "" {
		msg += " for " + e.RecordType
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReconstructError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReconstructError) Is(target error) bool {
	return target == ErrReconstruct
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when parsing or stabilization exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
