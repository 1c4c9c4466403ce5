package httpclient

import (
	"context"
	"net/http"
)

// Outbound id headers, matching the inbound ones.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation id for outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// propagateIDs copies ids found in ctx onto req. Empty ids are skipped.
func propagateIDs(ctx context.Context, req *http.Request) {
	for header, key := range map[string]any{
		HeaderRequestID:     requestIDKey{},
		HeaderCorrelationID: correlationIDKey{},
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			req.Header.Set(header, id)
		}
	}
}
