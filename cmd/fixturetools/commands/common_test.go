package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
	}()

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

// TestValidateOutputFormat tests output format validation
func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatText))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

// TestOutputStructured tests structured stdout output
func TestOutputStructured(t *testing.T) {
	data := map[string]any{"pattern": "serverTime"}

	t.Run("json", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, OutputStructured(data, FormatJSON))
		})
		assert.Contains(t, out, `"pattern": "serverTime"`)
	})

	t.Run("yaml", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, OutputStructured(data, FormatYAML))
		})
		assert.Contains(t, out, "pattern: serverTime")
	})

	t.Run("text rejected", func(t *testing.T) {
		assert.Error(t, OutputStructured(data, FormatText))
	})
}

// TestValidateOutputPath tests output path safety checks
func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "watch.json")
	require.NoError(t, os.WriteFile(input, []byte(`{}`), 0o600))

	t.Run("fresh output path", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.json"), []string{input}))
	})

	t.Run("output overwrites input", func(t *testing.T) {
		err := ValidateOutputPath(input, []string{input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite input file")
	})

	t.Run("stdin input is skipped", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out2.json"), []string{StdinFilePath}))
	})
}

// TestRejectSymlinkOutput tests symlink rejection
func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()

	t.Run("nonexistent path accepted", func(t *testing.T) {
		assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "new.json")))
	})

	t.Run("regular file accepted", func(t *testing.T) {
		path := filepath.Join(dir, "regular.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
		assert.NoError(t, RejectSymlinkOutput(path))
	})

	t.Run("symlink rejected", func(t *testing.T) {
		target := filepath.Join(dir, "target.json")
		require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o600))
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.Symlink(target, link))

		err := RejectSymlinkOutput(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to write to symlink")
	})
}

// TestFormatFixturePath tests display path formatting
func TestFormatFixturePath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatFixturePath(StdinFilePath))
	assert.Equal(t, "watch.json", FormatFixturePath("watch.json"))
}
