package main

import (
	"context"
	"ctchen222/tictactoe-solo/internal/config"
	"ctchen222/tictactoe-solo/internal/logger"
	"ctchen222/tictactoe-solo/internal/session"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"ctchen222/tictactoe-solo/internal/terminal"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
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

	// The screen owns stdout, so logs go to the configured file or nowhere.
	out, closeOut, err := logger.Output(cfg.Log.File, io.Discard)
	if err != nil {
		log.Fatalf("failed to open log output: %v", err)
	}
	defer closeOut()
	if err := logger.Init(out, cfg.Log.Level, cfg.Telemetry.Enabled); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	metrics, err := telemetry.NewGameMetrics(otel.Meter("terminal"))
	if err != nil {
		log.Fatalf("failed to create game metrics: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	if err := terminal.New(screen, session.New(), metrics).Run(); err != nil {
		slog.Error("Terminal closed with error", "error", err)
	}
}
