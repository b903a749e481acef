package config

import "time"

// Backend names for the entry/credential store.
const (
	BackendSQLite = "sqlite"
	BackendKV     = "kv"
)

// Config holds runtime settings for the MoodCam CLI.
//
// Fields:
//   - Backend: storage backend, "sqlite" or "kv".
//   - DatabaseDSN: path of the local database file.
//   - MusicEndpoint: base URL of the keyless YouTube search proxy.
//   - MusicSearchTimeout: HTTP timeout for music searches.
//   - Nudge*/DailyReminder*: local times of the evening nudge and the
//     repeating daily reminder.
type Config struct {
	Backend             string
	DatabaseDSN         string
	MusicEndpoint       string
	MusicSearchTimeout  time.Duration
	NudgeHour           int
	NudgeMinute         int
	DailyReminderHour   int
	DailyReminderMinute int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabaseDSN = "moodcam.db"
	c.MusicEndpoint = "https://yt.lemnoslife.com/noKey"
	c.MusicSearchTimeout = 10 * time.Second
	c.NudgeHour = 20
	c.NudgeMinute = 30
	c.DailyReminderHour = 21
	c.DailyReminderMinute = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
