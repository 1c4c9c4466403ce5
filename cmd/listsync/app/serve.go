package app

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/listsync/internal/adapters/clients/marketing"
	adapthttp "github.com/jsamuelsen11/listsync/internal/adapters/http"
	"github.com/jsamuelsen11/listsync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/listsync/internal/adapters/http/middleware"
	appsvc "github.com/jsamuelsen11/listsync/internal/app"
	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/platform/health"
	"github.com/jsamuelsen11/listsync/internal/platform/httpclient"
	"github.com/jsamuelsen11/listsync/internal/platform/logging"
	"github.com/jsamuelsen11/listsync/internal/platform/telemetry"
	"github.com/jsamuelsen11/listsync/internal/ports"
	"github.com/jsamuelsen11/listsync/internal/validation"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	remoteServiceName = "marketing-api"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the listsync HTTP API",
		Long: `Start the HTTP API. Writes are committed to the local store first and then
propagated to the marketing API. The server stops gracefully on SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := cmd.Context()
	otel, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	// Every return path below, including early errors, flushes telemetry.
	defer otel.flush(ctx, otelShutdownTimeout, logger)

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.scrape)

	// Resolving the server eagerly wires the full graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[localStore](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	if err := server.Listen(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, scrape nethttp.Handler) {
	do.Provide(injector, func(_ do.Injector) (localStore, error) {
		return openStore(context.Background(), cfg.Store, false)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Remote, remoteServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RemoteGateway, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return marketing.NewGateway(client, cfg.Remote.APIKey, logging.ForComponent(logger, "marketing")), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.ValidationGate, error) {
		return validation.NewGate(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		store := do.MustInvoke[localStore](i)
		return appsvc.NewListService(store, store,
			do.MustInvoke[ports.RemoteGateway](i),
			do.MustInvoke[ports.ValidationGate](i),
			logging.ForComponent(logger, "lists"),
			appsvc.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MemberService, error) {
		store := do.MustInvoke[localStore](i)
		return appsvc.NewMemberService(store, store,
			do.MustInvoke[ports.RemoteGateway](i),
			do.MustInvoke[ports.ValidationGate](i),
			logging.ForComponent(logger, "members"),
			appsvc.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Routes, error) {
		return adapthttp.Routes{
			Lists:   handlers.NewListHandler(do.MustInvoke[ports.ListService](i)),
			Members: handlers.NewMemberHandler(do.MustInvoke[ports.MemberService](i)),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Metrics: scrape,
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := do.MustInvoke[adapthttp.Routes](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
