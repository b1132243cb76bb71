// Package config loads runtime settings for the myapp client.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults (LoadDefaults).
//  2. A JSON file named via -c/-config.
//  3. Environment variables (MYAPP_API_BASE_URL, MYAPP_API_TIMEOUT in
//     milliseconds, MYAPP_DEBUG, MYAPP_DATABASE_PATH).
//  4. Command-line flags (-a, -t, -d, -f).
//
// After layering, the base URL is normalized: a missing scheme gets http://
// prepended with a logged warning.
package config
