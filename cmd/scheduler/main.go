package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vaxscheduler/internal/buildinfo"
	"github.com/dmitrijs2005/vaxscheduler/internal/cli"
	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Driver, cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Error(ctx, "storage unavailable", "driver", cfg.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	m := metrics.New()
	cli.NewApp(cfg, store, logger, m, os.Stdout).Run(ctx, os.Stdin)

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn(ctx, "metrics textfile not written", "path", cfg.MetricsFile, "error", err)
		}
	}
}
