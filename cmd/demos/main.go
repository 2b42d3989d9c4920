package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/demos"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/telemetry"
	"github.com/osa911/portfolio/internal/version"
)

func main() {
	cfg, err := config.LoadDemos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logConfig := logging.DefaultConfig(cfg.LogFile)
	logConfig.Level = cfg.LogLevel
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()
	logger.SetLogRequests(cfg.LogRequests)

	logger.Info("Starting %s %s in %s mode", version.DemosServiceName, version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.Setup(ctx, version.DemosServiceName, version.APIVersion, cfg.Tracing)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}

	srv, err := demos.NewServer(cfg, tracing)
	if err != nil {
		logger.Error("Failed to create demos server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server error: %v", err)
		os.Exit(1)
	}
}
