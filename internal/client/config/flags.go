package config

import (
	"flag"
	"os"
	"time"

	"github.com/zapulam/myapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the authentication backend (default from Config)
//	-t int      request timeout in milliseconds (default from Config)
//	-d          enable debug logging
//	-f string   path to the session database file
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the authentication backend")
	timeoutMs := fs.Int("t", int(cfg.RequestTimeout.Milliseconds()), "request timeout (in milliseconds)")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the session database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutMs) * time.Millisecond
}
