package config

import (
	"log"
	"strings"
	"time"
)

// Config holds runtime settings for the myapp client.
//
// Fields:
//   - APIBaseURL: base URL of the authentication backend, scheme included.
//   - RequestTimeout: client-side timeout applied to every API call.
//   - Debug: enables verbose request/response logging.
//   - DatabasePath: sqlite file holding the persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	Debug          bool
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10000 * time.Millisecond
	c.Debug = false
	c.DatabasePath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.normalizeBaseURL()
	return cfg
}

// normalizeBaseURL prepends http:// when the configured URL has no scheme.
func (c *Config) normalizeBaseURL() {
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		log.Printf("API base URL should include protocol (http:// or https://), assuming http://")
		c.APIBaseURL = "http://" + c.APIBaseURL
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
}
