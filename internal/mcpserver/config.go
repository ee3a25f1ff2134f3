package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/aws2openapi/converter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Conversion defaults.
	MapParameterCap int
	Strict          bool
	RegionConfig    string

	// Input cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from AWS2OPENAPI_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MapParameterCap:    envInt("AWS2OPENAPI_MAP_PARAM_CAP", converter.DefaultMapParameterCap),
		Strict:             envBool("AWS2OPENAPI_STRICT", false),
		RegionConfig:       os.Getenv("AWS2OPENAPI_REGION_CONFIG"),
		CacheEnabled:       envBool("AWS2OPENAPI_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("AWS2OPENAPI_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("AWS2OPENAPI_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("AWS2OPENAPI_CACHE_URL_TTL", 5*time.Minute),
		CacheSweepInterval: envDuration("AWS2OPENAPI_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("AWS2OPENAPI_MAX_INLINE_SIZE", 16*1024*1024)),
		AllowPrivateIPs:    envBool("AWS2OPENAPI_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
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

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
