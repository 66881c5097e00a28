package main

import (
	"context"
	"ctchen222/tictactoe-solo/internal/config"
	"ctchen222/tictactoe-solo/internal/logger"
	"ctchen222/tictactoe-solo/internal/session"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"ctchen222/tictactoe-solo/internal/window"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
)

func main() {
	ctx := context.Background()

	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	out, closeOut, err := logger.Output(cfg.Log.File, os.Stdout)
	if err != nil {
		log.Fatalf("failed to open log output: %v", err)
	}
	defer closeOut()
	if err := logger.Init(out, cfg.Log.Level, cfg.Telemetry.Enabled); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	metrics, err := telemetry.NewGameMetrics(otel.Meter("window"))
	if err != nil {
		log.Fatalf("failed to create game metrics: %v", err)
	}

	if err := window.Run(cfg.Window, session.New(), metrics); err != nil {
		slog.Error("Window closed with error", "error", err)
	}
}
