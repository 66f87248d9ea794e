package fixture

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNopLogger verifies the no-op logger discards everything quietly
func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// None of these should panic or produce output.
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn", "odd-attr")
	logger.Error("error", "k", 42)

	assert.Equal(t, logger, logger.With("k", "v"))
}

// TestSlogAdapter verifies the slog bridge forwards levels and attributes
func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("parsing fixture", "path", "watch.json")
	logger.Info("parsed fixture", "format", "json")
	logger.Warn("large fixture", "size", 1024)
	logger.Error("parse failed", "path", "broken.json")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "parsing fixture")
	assert.Contains(t, out, "path=watch.json")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "format=json")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "size=1024")
	assert.Contains(t, out, "level=ERROR")
}

// TestSlogAdapterWith verifies With prepends attributes to later logs
func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, nil)
	logger := NewSlogAdapter(slog.New(handler)).With("component", "parser")

	logger.Info("parsed fixture")

	assert.Contains(t, buf.String(), "component=parser")
}

// TestNewSlogAdapterNil verifies a nil logger falls back to slog.Default
func TestNewSlogAdapterNil(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	// Must be safe to use.
	adapter.Debug("noop")
}
