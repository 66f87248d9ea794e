// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/fixturetools/staberrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// component names the calling package and hint lists its input options, both
// used in the error message. sources is a variadic list of booleans
// indicating whether each source is set.
// Returns a *staberrors.ConfigError if zero or more than one source is set.
func ValidateSingleInputSource(component, hint string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &staberrors.ConfigError{
			Option:  component,
			Message: "no input source specified (" + hint + ")",
		}
	}
	if sourceCount > 1 {
		return &staberrors.ConfigError{
			Option:  component,
			Message: "multiple input sources specified",
		}
	}

	return nil
}
