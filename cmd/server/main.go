package main

import (
	"context"
	"ctchen222/tictactoe-solo/internal/config"
	"ctchen222/tictactoe-solo/internal/hub"
	"ctchen222/tictactoe-solo/internal/logger"
	"ctchen222/tictactoe-solo/internal/server"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
)

func main() {
	ctx := context.Background()

	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))

	// Initialize telemetry
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

	metrics, err := telemetry.NewGameMetrics(otel.Meter("server"))
	if err != nil {
		log.Fatalf("failed to create game metrics: %v", err)
	}

	// Create hub
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	h := hub.NewHub()
	go h.Run(hubCtx)

	gin.SetMode(gin.ReleaseMode)
	srv := server.NewServer(h, server.WithMetrics(metrics))

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	// Shutdown does not wait for hijacked websocket connections, so close them here.
	h.CloseAll()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exiting")
}
