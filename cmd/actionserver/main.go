package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/indexer-tools/actionq/internal/actionserver"
	"github.com/indexer-tools/actionq/pkg/env"
	"github.com/indexer-tools/actionq/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	logConfig := logging.NewDefaultConfig(logging.ActionServerProcess)
	if env.GetEnvBool("ACTIONQ_PRODUCTION", false) {
		logConfig.Environment = logging.Production
	}
	if err := logging.InitServiceLogger(logConfig); err != nil {
		os.Exit(1)
	}
	defer logging.Shutdown()
	logger := logging.GetServiceLogger()

	addr := env.GetEnvString("ACTIONQ_SERVER_ADDR", ":8000")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := actionserver.NewServer(logger)
	if err := server.Start(ctx, addr); err != nil {
		logger.Fatalf("Action server stopped: %v", err)
	}
	logger.Info("Action server shut down")
}
