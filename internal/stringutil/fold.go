// Package stringutil provides small string helpers shared across fixturetools.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s mapped to its Unicode case-folded form, suitable for
// caseless comparison. A fresh Caser is created per call because
// cases.Caser values are stateful and not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is contained in s under Unicode
// case folding. An empty substr matches any string.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// EqualFold reports whether s and t are equal under Unicode case folding.
func EqualFold(s, t string) bool {
	return Fold(s) == Fold(t)
}
