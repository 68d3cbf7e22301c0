// Package config loads runtime settings for the wallet CLI.
package config

import "time"

// Config holds runtime settings for the wallet CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the wallet backend API.
//   - RequestTimeout: per-request timeout of the HTTP client. Timeout
//     policy lives here, not in the state containers.
//   - DataFile: sqlite database holding the credential and preferences.
//   - CookieFile: file holding the mirrored credential cookie.
//   - RestorePollInterval / RestorePollTimeout: cadence and deadline of the
//     post-restore rebuild poll.
type Config struct {
	ServerEndpointAddr  string
	RequestTimeout      time.Duration
	DataFile            string
	CookieFile          string
	RestorePollInterval time.Duration
	RestorePollTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DataFile = "wallet.db"
	c.CookieFile = "cookie.json"
	c.RestorePollInterval = 2 * time.Second
	c.RestorePollTimeout = 2 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
