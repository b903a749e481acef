// Package config loads runtime configuration for the MoodCam CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   storage backend, "sqlite" or "kv"
//	-d string   path of the local database file
//	-m string   base URL of the music search proxy
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "backend": "sqlite",
//	  "database_dsn": "moodcam.db",
//	  "music_endpoint": "https://yt.lemnoslife.com/noKey",
//	  "music_search_timeout": "10s"
//	}
//
// Primary API
//
//   - type Config                     — storage backend, DSN, music proxy and reminder times
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
