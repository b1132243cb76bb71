package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/zapulam/myapp/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// specified in milliseconds, matching the environment variable. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	APITimeoutMs int    `json:"api_timeout_ms"`
	Debug        bool   `json:"debug"`
	DatabasePath string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values are skipped so
//     the file can specify a subset.
//   - Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.APITimeoutMs > 0 {
		cfg.RequestTimeout = time.Duration(jc.APITimeoutMs) * time.Millisecond
	}
	if jc.Debug {
		cfg.Debug = true
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
