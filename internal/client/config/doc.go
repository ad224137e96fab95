// Package config loads runtime configuration for the ideatrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), IDEATRACK_* keys. Use a .env
//     file loaded at startup to set them during development.
//  4. Command-line flags (see parseFlags), which override everything.
//
// Supported flags
//
//	-a string   base URL of the idea-management service
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-r int      fallback wait before retrying a rate-limited request (seconds)
//
// # JSON schema
//
// Interval values use timex.Duration, so they can be either strings like
// "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:3000",
//	  "database_dsn": "ideatrack.db",
//	  "request_timeout": "15s",
//	  "retry_wait": "2s"
//	}
package config
