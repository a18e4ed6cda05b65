package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nfl-prediction-service/internal/config"
	"nfl-prediction-service/internal/logging"
	"nfl-prediction-service/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nfl-prediction-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("server startup failed", "err", err)
		stop()
		os.Exit(1)
	}

	srv.Run(ctx, stop)
}
