package config

import "time"

// Config holds runtime settings for the ideatrack CLI.
//
// Fields:
//   - APIBaseURL: base URL of the idea-management service.
//   - DatabaseDSN: path of the local SQLite database holding the session.
//   - RequestTimeout: per-request HTTP timeout.
//   - RetryWait: fallback delay before the single retry of a rate-limited
//     request, used when the server suggests none.
type Config struct {
	APIBaseURL     string
	DatabaseDSN    string
	RequestTimeout time.Duration
	RetryWait      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.DatabaseDSN = "ideatrack.db"
	c.RequestTimeout = 15 * time.Second
	c.RetryWait = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
