package fixture

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOrdered is a test helper that parses bytes with order preservation
func parseOrdered(t *testing.T, src string) *ParseResult {
	t.Helper()
	p := &Parser{PreserveOrder: true}
	result, err := p.ParseBytes([]byte(src))
	require.NoError(t, err)
	require.True(t, result.HasPreservedOrder())
	return result
}

// TestMarshalOrderedJSON tests order-preserving JSON serialization
func TestMarshalOrderedJSON(t *testing.T) {
	t.Run("preserves source key order", func(t *testing.T) {
		result := parseOrdered(t, `{"zeta": 1, "alpha": 2, "mid": {"b": true, "a": null}}`)

		data, err := result.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":1,"alpha":2,"mid":{"b":true,"a":null}}`, string(data))
	})

	t.Run("falls back to sorted keys without preserved order", func(t *testing.T) {
		result, err := New().ParseBytes([]byte(`{"zeta": 1, "alpha": 2}`))
		require.NoError(t, err)

		data, err := result.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"alpha":2,"zeta":1}`, string(data))
	})

	t.Run("modified values keep original order", func(t *testing.T) {
		result := parseOrdered(t, `{"zeta": 1, "alpha": 2}`)

		replaced := result.WithDocument(map[string]any{"zeta": 99, "alpha": 2})
		data, err := replaced.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":99,"alpha":2}`, string(data))
	})

	t.Run("removed keys are omitted", func(t *testing.T) {
		result := parseOrdered(t, `{"zeta": 1, "alpha": 2, "gone": 3}`)

		replaced := result.WithDocument(map[string]any{"zeta": 1, "alpha": 2})
		data, err := replaced.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":1,"alpha":2}`, string(data))
	})

	t.Run("new keys append after source keys sorted", func(t *testing.T) {
		result := parseOrdered(t, `{"zeta": 1}`)

		replaced := result.WithDocument(map[string]any{"zeta": 1, "bb": 2, "aa": 3})
		data, err := replaced.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":1,"aa":3,"bb":2}`, string(data))
	})

	t.Run("replaced subtree marshals without a source node", func(t *testing.T) {
		result := parseOrdered(t, `{"outer": {"b": 1, "a": 2}}`)

		// The mapping became a scalar; the ordered path cannot apply.
		replaced := result.WithDocument(map[string]any{"outer": "collapsed"})
		data, err := replaced.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"outer":"collapsed"}`, string(data))
	})

	t.Run("arrays keep element nodes aligned", func(t *testing.T) {
		result := parseOrdered(t, `{"items": [{"z": 1, "y": 2}, {"z": 3, "y": 4}]}`)

		data, err := result.MarshalOrderedJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"items":[{"z":1,"y":2},{"z":3,"y":4}]}`, string(data))
	})
}

// TestMarshalOrderedJSONIndent tests indented ordered serialization
func TestMarshalOrderedJSONIndent(t *testing.T) {
	result := parseOrdered(t, `{"zeta": 1, "alpha": 2}`)

	data, err := result.MarshalOrderedJSONIndent("", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"zeta\": 1,\n  \"alpha\": 2\n}", string(data))
}

// TestMarshalOrderedYAML tests order-preserving YAML serialization
func TestMarshalOrderedYAML(t *testing.T) {
	t.Run("preserves source key order", func(t *testing.T) {
		result, err := (&Parser{PreserveOrder: true}).Parse(filepath.Join("testdata", "watch.yaml"))
		require.NoError(t, err)

		data, err := result.MarshalOrderedYAML()
		require.NoError(t, err)

		out := string(data)
		assert.Less(t, strings.Index(out, "meta:"), strings.Index(out, "data:"))
		assert.Less(t, strings.Index(out, "status:"), strings.Index(out, "serverTime:"))
		assert.Less(t, strings.Index(out, "title:"), strings.Index(out, "viewCount:"))
	})

	t.Run("falls back without preserved order", func(t *testing.T) {
		result, err := New().ParseBytes([]byte("zeta: 1\nalpha: 2\n"))
		require.NoError(t, err)

		data, err := result.MarshalOrderedYAML()
		require.NoError(t, err)
		// Standard marshaling sorts keys.
		assert.Less(t, strings.Index(string(data), "alpha:"), strings.Index(string(data), "zeta:"))
	})
}

// TestMarshal tests format routing
func TestMarshal(t *testing.T) {
	result := parseOrdered(t, `{"zeta": 1, "alpha": 2}`)

	t.Run("JSON compact", func(t *testing.T) {
		data, err := result.Marshal(SourceFormatJSON, "")
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":1,"alpha":2}`, string(data))
	})

	t.Run("JSON indented", func(t *testing.T) {
		data, err := result.Marshal(SourceFormatJSON, "  ")
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"zeta\": 1")
	})

	t.Run("YAML", func(t *testing.T) {
		data, err := result.Marshal(SourceFormatYAML, "")
		require.NoError(t, err)
		assert.Less(t, strings.Index(string(data), "zeta:"), strings.Index(string(data), "alpha:"))
	})

	t.Run("unknown format marshals as JSON", func(t *testing.T) {
		data, err := result.Marshal(SourceFormatUnknown, "")
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":1,"alpha":2}`, string(data))
	})
}
