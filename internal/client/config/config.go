// Package config loads runtime settings for the campusctl client, layering
// defaults, an optional JSON file and command-line flags. Later sources take
// precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the campusctl client.
//
// Fields:
//   - APIBaseURL: base URL of the campus API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - CredentialDBPath: path of the local sqlite database holding the token.
//   - CredentialTTL: client-side lifetime of a stored token.
//   - ListingCacheTTL: how long course listings are served from cache.
type Config struct {
	APIBaseURL       string
	RequestTimeout   time.Duration
	CredentialDBPath string
	CredentialTTL    time.Duration
	ListingCacheTTL  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.CredentialDBPath = "campus.db"
	c.CredentialTTL = 24 * time.Hour
	c.ListingCacheTTL = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
