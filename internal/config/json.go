package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jaynujangad03/moodcam/internal/flagx"
	"github.com/jaynujangad03/moodcam/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	Backend            string         `json:"backend"`
	DatabaseDSN        string         `json:"database_dsn"`
	MusicEndpoint      string         `json:"music_endpoint"`
	MusicSearchTimeout timex.Duration `json:"music_search_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on
// read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MusicEndpoint != "" {
		cfg.MusicEndpoint = jc.MusicEndpoint
	}
	if jc.MusicSearchTimeout.Duration != 0 {
		cfg.MusicSearchTimeout = time.Duration(jc.MusicSearchTimeout.Duration)
	}
}
