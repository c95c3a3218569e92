package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeenath1324/Mini-project/config"
	"github.com/zeenath1324/Mini-project/librarystore"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var configPath string
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "path to a yaml config file (default ./library.yaml if present)")
	flag.Parse()

	if showVersion {
		fmt.Printf("library %s\n", Version)
		return
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := config.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = config.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting library", "version", Version, "sinks", cfg.ActivityLog.Sinks)

	activityLog, err := config.OpenActivityLog(ctx, cfg.ActivityLog, logger)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer func() {
		if closeErr := activityLog.Close(); closeErr != nil {
			logger.Error("closing activity log failed", "error", closeErr)
		}
	}()

	options, err := config.StoreOptions(cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to configure store: %w", err)
	}

	store, err := librarystore.New(activityLog, options...)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	err = NewMenu(store, activityLog, os.Stdin, os.Stdout).Run(ctx)

	logger.Info("shutting down", "log_write_failures", store.LogWriteFailures())

	return err
}
