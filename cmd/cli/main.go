package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/pankitchen/pankitchen/internal/client/cli"
	"github.com/pankitchen/pankitchen/internal/client/config"
	"github.com/pankitchen/pankitchen/internal/logging"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
