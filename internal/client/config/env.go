package config

import (
	"os"
	"time"
)

// Environment variable names. A .env file loaded at startup (godotenv) is
// the usual way to set these during development.
const (
	EnvAPIBaseURL  = "IDEATRACK_API_URL"
	EnvDatabaseDSN = "IDEATRACK_DB"
	EnvTimeout     = "IDEATRACK_TIMEOUT"
	EnvRetryWait   = "IDEATRACK_RETRY_WAIT"
)

// parseEnv overlays cfg with values from the environment. Durations use the
// time.ParseDuration syntax ("15s"); malformed values panic.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(EnvRetryWait); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RetryWait = d
	}
}
