package config

import (
	"flag"
	"os"

	"github.com/jaynujangad03/moodcam/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend, "sqlite" or "kv" (default from Config)
//	-d string   path of the local database file (default from Config)
//	-m string   base URL of the music search proxy (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite or kv)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.MusicEndpoint, "m", cfg.MusicEndpoint, "base URL of the music search proxy")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
