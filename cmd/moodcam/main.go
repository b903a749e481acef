package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jaynujangad03/moodcam/internal/cli"
	"github.com/jaynujangad03/moodcam/internal/config"
	"github.com/jaynujangad03/moodcam/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	// Warn level keeps the structured log from interleaving with the REPL.
	logger := logging.NewSlogLogger(slog.New(
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}),
	))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
