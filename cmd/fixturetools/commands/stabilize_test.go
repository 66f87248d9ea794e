package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture is a test helper that writes a fixture file and returns its path
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestHandleStabilize tests the stabilize command end to end
func TestHandleStabilize(t *testing.T) {
	t.Run("JSON fixture to output file", func(t *testing.T) {
		input := writeFixture(t, "watch.json",
			`{"zeta": "keep", "serverTime": "2024-06-01T12:00:00+09:00", "views": 4821}`)
		output := filepath.Join(filepath.Dir(input), "stable.json")

		err := HandleStabilize([]string{"-q", "-o", output, input})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)

		out := string(data)
		assert.Contains(t, out, `"serverTime": "2025-01-01T00:00:00+09:00"`)
		assert.Contains(t, out, `"views": 1`)
		// Key order from the source survives.
		assert.Less(t, strings.Index(out, "zeta"), strings.Index(out, "serverTime"))
	})

	t.Run("compact output with empty indent", func(t *testing.T) {
		input := writeFixture(t, "watch.json", `{"serverTime": "2024-06-01T12:00:00+09:00"}`)
		output := filepath.Join(filepath.Dir(input), "stable.json")

		err := HandleStabilize([]string{"-q", "--indent", "", "-o", output, input})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, `{"serverTime":"2025-01-01T00:00:00+09:00"}`, string(data))
	})

	t.Run("YAML fixture keeps YAML output", func(t *testing.T) {
		input := writeFixture(t, "watch.yaml", "serverTime: 2024-06-01T12:00:00+09:00\ntitle: My Video\n")
		output := filepath.Join(filepath.Dir(input), "stable.yaml")

		err := HandleStabilize([]string{"-q", "-o", output, input})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)

		out := string(data)
		assert.Contains(t, out, "2025-01-01T00:00:00+09:00")
		assert.Contains(t, out, "title: My Video")
		assert.Less(t, strings.Index(out, "serverTime:"), strings.Index(out, "title:"))
	})

	t.Run("already-stable fixture is a no-op", func(t *testing.T) {
		input := writeFixture(t, "stable.json", `{"title": "My Video"}`)
		output := filepath.Join(filepath.Dir(input), "out.json")

		err := HandleStabilize([]string{"-q", "-o", output, input})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"title": "My Video"`)
	})

	t.Run("missing file", func(t *testing.T) {
		err := HandleStabilize([]string{"-q", filepath.Join(t.TempDir(), "missing.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stabilizing fixture")
	})

	t.Run("no arguments", func(t *testing.T) {
		err := HandleStabilize([]string{"-q"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one file path")
	})

	t.Run("output would overwrite input", func(t *testing.T) {
		input := writeFixture(t, "watch.json", `{"views": 1}`)

		err := HandleStabilize([]string{"-q", "-o", input, input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite input file")
	})

	t.Run("help returns nil", func(t *testing.T) {
		assert.NoError(t, HandleStabilize([]string{"--help"}))
	})
}
