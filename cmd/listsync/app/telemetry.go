package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/platform/telemetry"
)

// otelProviders is the running telemetry setup. With telemetry disabled it
// is empty and metrics is nil; scrape is set only for the prometheus
// exporter.
type otelProviders struct {
	metrics  *telemetry.Metrics
	scrape   http.Handler
	shutdown []func(context.Context) error
}

// Shutdown flushes providers in reverse start order.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(o.shutdown) - 1; i >= 0; i-- {
		errs = append(errs, o.shutdown[i](ctx))
	}
	o.shutdown = nil
	return errors.Join(errs...)
}

// flush shuts the providers down within timeout, detached from ctx so that
// spans and metrics are exported even when ctx is already cancelled.
// Failures are logged.
func (o *otelProviders) flush(ctx context.Context, timeout time.Duration, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := o.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (_ *otelProviders, err error) {
	o := &otelProviders{}
	if !cfg.Enabled {
		return o, nil
	}
	defer func() {
		if err != nil {
			_ = o.Shutdown(ctx)
		}
	}()

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.shutdown = append(o.shutdown, tp.Shutdown)

	var opts []telemetry.MeterOption
	if cfg.Exporter == telemetry.ExporterPrometheus {
		reg := prometheus.NewRegistry()
		opts = append(opts, telemetry.WithRegisterer(reg))
		o.scrape = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.shutdown = append(o.shutdown, mp.Shutdown)

	if o.metrics, err = telemetry.NewMetrics(mp, cfg.ServiceName); err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}
