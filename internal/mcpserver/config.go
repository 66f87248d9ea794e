package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// ChangeLimit is the default page size for change lists.
	ChangeLimit int

	// MaxLimit caps any client-requested limit.
	MaxLimit int

	// CounterValue overrides the numeric replacement used in count context.
	// Nil means the built-in default.
	CounterValue any
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FIXTURETOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ChangeLimit:  envInt("FIXTURETOOLS_CHANGE_LIMIT", 100),
		MaxLimit:     envInt("FIXTURETOOLS_MAX_LIMIT", 1000),
		CounterValue: envCounter("FIXTURETOOLS_COUNTER_VALUE"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envCounter parses an optional integer counter override. An unset variable
// returns nil so the stabilizer default applies.
func envCounter(key string) any {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid counter env var, ignoring", "key", key, "value", v)
		return nil
	}
	return n
}
