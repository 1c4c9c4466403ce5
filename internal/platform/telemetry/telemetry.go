// Package telemetry sets up OpenTelemetry tracing and metrics for listsync.
//
// Three exporters are supported: stdout for local runs, OTLP over HTTP for a
// collector, and prometheus, which serves metrics from a registry scraped on
// /metrics and prints spans to stdout.
//
//	reg := prometheus.NewRegistry()
//	tp, err := telemetry.InitTracer(ctx, "listsync", telemetry.ExporterPrometheus, "")
//	mp, err := telemetry.InitMeter(ctx, "listsync", telemetry.ExporterPrometheus, "",
//	    telemetry.WithRegisterer(reg))
//	metrics, err := telemetry.NewMetrics(mp, "listsync")
//
// Both providers must be shut down on exit to flush pending data.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names, as used in the telemetry.exporter setting.
const (
	ExporterStdout     = "stdout"
	ExporterOTLP       = "otlp"
	ExporterPrometheus = "prometheus"
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// InitTracer installs a global TracerProvider and the W3C trace context and
// baggage propagators.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterOTLP:
		host, insecure, err := otlpTarget(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("creating otlp span exporter: %w", err)
		}
	case ExporterStdout, ExporterPrometheus:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("creating stdout span exporter: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// MeterOption configures InitMeter.
type MeterOption func(*meterOptions)

type meterOptions struct {
	registerer prometheus.Registerer
}

// WithRegisterer sets where the prometheus exporter registers its collector.
// The default is prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) MeterOption {
	return func(o *meterOptions) {
		o.registerer = reg
	}
}

// InitMeter installs a global MeterProvider. OTLP and stdout readers push
// periodically; the prometheus reader is pulled on scrape.
func InitMeter(
	ctx context.Context, serviceName, exporter, endpoint string, opts ...MeterOption,
) (*sdkmetric.MeterProvider, error) {
	o := meterOptions{registerer: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(&o)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	reader, err := newMetricReader(ctx, exporter, endpoint, o)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res))
	otel.SetMeterProvider(mp)
	return mp, nil
}

func newMetricReader(ctx context.Context, exporter, endpoint string, o meterOptions) (sdkmetric.Reader, error) {
	switch exporter {
	case ExporterOTLP:
		host, insecure, err := otlpTarget(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("creating otlp metric exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exp), nil
	case ExporterStdout:
		exp, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("creating stdout metric exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exp), nil
	case ExporterPrometheus:
		reader, err := otelprom.New(otelprom.WithRegisterer(o.registerer))
		if err != nil {
			return nil, fmt.Errorf("creating prometheus exporter: %w", err)
		}
		return reader, nil
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// otlpTarget splits a collector endpoint into the host:port the exporters
// expect and whether plain HTTP is used. Bare host:port values are insecure.
func otlpTarget(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
