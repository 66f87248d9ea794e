package stabilizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRuleMatches tests the matching predicate across modes and targets
func TestRuleMatches(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		fieldName string
		path      string
		expected  bool
	}{
		{
			name:      "exact field name match",
			rule:      Rule{Pattern: "serverTime"},
			fieldName: "serverTime",
			path:      "data.serverTime",
			expected:  true,
		},
		{
			name:      "exact match is case-sensitive",
			rule:      Rule{Pattern: "serverTime"},
			fieldName: "servertime",
			path:      "data.servertime",
			expected:  false,
		},
		{
			name:      "exact match ignores path when pattern has no separator",
			rule:      Rule{Pattern: "serverTime"},
			fieldName: "serverTime",
			path:      "deeply.nested.serverTime",
			expected:  true,
		},
		{
			name:      "field name rule does not match partial field name in exact mode",
			rule:      Rule{Pattern: "views"},
			fieldName: "viewsToday",
			path:      "viewsToday",
			expected:  false,
		},
		{
			name:      "substring field name match is case-insensitive",
			rule:      Rule{Pattern: "description", Mode: MatchSubstring},
			fieldName: "shortDescription",
			path:      "video.shortDescription",
			expected:  true,
		},
		{
			name:      "substring match when pattern equals target",
			rule:      Rule{Pattern: "description", Mode: MatchSubstring},
			fieldName: "description",
			path:      "description",
			expected:  true,
		},
		{
			name:      "substring no match",
			rule:      Rule{Pattern: "description", Mode: MatchSubstring},
			fieldName: "title",
			path:      "video.title",
			expected:  false,
		},
		{
			name:      "path pattern matches full ancestry",
			rule:      Rule{Pattern: "waku.information", Mode: MatchSubstring},
			fieldName: "information",
			path:      "watch_data.waku.information",
			expected:  true,
		},
		{
			name:      "path pattern ignores bare field name",
			rule:      Rule{Pattern: "waku.information", Mode: MatchSubstring},
			fieldName: "information",
			path:      "other.information",
			expected:  false,
		},
		{
			name:      "exact path pattern requires full path equality",
			rule:      Rule{Pattern: "watch_data.serverTime"},
			fieldName: "serverTime",
			path:      "watch_data.serverTime",
			expected:  true,
		},
		{
			name:      "exact path pattern does not match deeper path",
			rule:      Rule{Pattern: "watch_data.serverTime"},
			fieldName: "serverTime",
			path:      "watch_data.nested.serverTime",
			expected:  false,
		},
		{
			name:      "root visit never matches a named rule",
			rule:      Rule{Pattern: "serverTime"},
			fieldName: "",
			path:      "",
			expected:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.rule.Matches(tc.fieldName, tc.path))
		})
	}
}

// TestMatchModeString tests the MatchMode string representation
func TestMatchModeString(t *testing.T) {
	assert.Equal(t, "Exact", MatchExact.String())
	assert.Equal(t, "Substring", MatchSubstring.String())
	assert.Equal(t, fmt.Sprintf("MatchMode(%d)", 99), MatchMode(99).String())
}

// TestMatchModeIsValid tests MatchMode validity checks
func TestMatchModeIsValid(t *testing.T) {
	assert.True(t, MatchExact.IsValid())
	assert.True(t, MatchSubstring.IsValid())
	assert.False(t, MatchMode(-1).IsValid())
	assert.False(t, MatchMode(2).IsValid())
}
