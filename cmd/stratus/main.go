package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/stratus/adapter/cli"
	cliAuth "github.com/felixgeelhaar/stratus/adapter/cli/auth"
	cliSponsor "github.com/felixgeelhaar/stratus/adapter/cli/sponsor"
	"github.com/felixgeelhaar/stratus/internal/app"
	"github.com/felixgeelhaar/stratus/pkg/config"
	"github.com/felixgeelhaar/stratus/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger := observability.NewLogger(observability.DefaultLogConfig())
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	logCfg.ServiceVersion = cli.Version
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	// Restore the persisted session before any command runs. Failures
	// leave the client signed out; commands still work.
	if err := container.Auth.Restore(ctx); err != nil {
		logger.Warn("session restore failed", "error", err)
	}

	cli.SetController(container.Controller)
	cliAuth.SetService(container.Auth)
	cliSponsor.SetServices(container.Auth, container.Gateway)

	cli.AddCommand(cliAuth.Cmd)
	cli.AddCommand(cliSponsor.Cmd)

	cli.Execute()
}
