package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/wordagg/config"
)

// serverConfig holds the MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Aggregation defaults shared with the CLI.
	Run *config.Config

	// Pagination of returned words.
	Limit    int
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from WORDAGG_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	run := config.Default()
	run.ApplyEnv()
	return &serverConfig{
		Run:      run,
		Limit:    envInt("WORDAGG_MCP_LIMIT", 100),
		MaxLimit: envInt("WORDAGG_MCP_MAX_LIMIT", 10000),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
