package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys used on metrics.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")

	AttrResource  = attribute.Key("sync.resource")
	AttrOperation = attribute.Key("sync.operation")
	AttrOutcome   = attribute.Key("sync.outcome")
)

// Outcomes of a coordinator operation. OutcomeOK is for reads, which have
// no remote step.
const (
	OutcomeOK          = "ok"
	OutcomeSynced      = "synced"
	OutcomeLocalOnly   = "local_only"
	OutcomeRejected    = "rejected"
	OutcomeNotFound    = "not_found"
	OutcomeLocalFailed = "local_failed"
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	SyncOperationTotal    metric.Int64Counter
}

// RecordSync counts one coordinator operation. Safe on a nil *Metrics.
func (m *Metrics) RecordSync(ctx context.Context, res, op, outcome string) {
	if m == nil || m.SyncOperationTotal == nil {
		return
	}
	m.SyncOperationTotal.Add(ctx, 1, metric.WithAttributes(
		AttrResource.String(res),
		AttrOperation.String(op),
		AttrOutcome.String(outcome),
	))
}

// NewMetrics registers every instrument on the meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	m := &Metrics{}

	histograms := []struct {
		dst  *metric.Float64Histogram
		name string
		desc string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of inbound API requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of marketing API calls"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Inbound API requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Marketing API calls", "{request}"},
		{&m.SyncOperationTotal, "listsync.sync.operations", "Coordinator operations by resource, operation and outcome", "{operation}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}
