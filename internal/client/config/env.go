package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvAPIBaseURL   = "MYAPP_API_BASE_URL"
	EnvAPITimeout   = "MYAPP_API_TIMEOUT"
	EnvDebug        = "MYAPP_DEBUG"
	EnvDatabasePath = "MYAPP_DATABASE_PATH"
)

// parseEnv overlays Config with values from environment variables. Unset or
// unparseable variables leave the current value untouched. MYAPP_API_TIMEOUT
// is in milliseconds; MYAPP_DEBUG is "true"/"false".
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvAPITimeout); ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.RequestTimeout = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		cfg.Debug = v == "true"
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
}
