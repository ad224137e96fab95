package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/ideatrack/internal/buildinfo"
	"github.com/dmitrijs2005/ideatrack/internal/client/cli"
	"github.com/dmitrijs2005/ideatrack/internal/client/config"
	"github.com/dmitrijs2005/ideatrack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// a missing .env file is fine; the environment overlay is optional
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
