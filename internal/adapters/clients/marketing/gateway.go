// Package marketing is the outbound adapter for the remote marketing API.
// It issues single-shot create, update and delete calls on resource paths
// chosen by the coordinator and returns the raw response document.
package marketing

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/platform/httpclient"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// Compile-time interface check.
var _ ports.RemoteGateway = (*Gateway)(nil)

// Gateway implements [ports.RemoteGateway] over the marketing API's REST
// interface. Updates are sent as PATCH so omitted fields keep their remote
// values.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry of idempotent calls and tracing.
type Gateway struct {
	req *Requester
}

// NewGateway creates a Gateway that sends requests through client,
// authenticating with apiKey.
func NewGateway(client *httpclient.Client, apiKey string, logger *slog.Logger) *Gateway {
	return &Gateway{req: NewRequester(client, apiKey, logger)}
}

// Create sends POST {path} with payload and returns the created resource.
func (g *Gateway) Create(ctx context.Context, path string, payload domain.Payload) (domain.RemoteFields, error) {
	return g.req.Do(ctx, http.MethodPost, path, nonNil(payload))
}

// Update sends PATCH {path} with payload and returns the updated resource.
func (g *Gateway) Update(ctx context.Context, path string, payload domain.Payload) (domain.RemoteFields, error) {
	return g.req.Do(ctx, http.MethodPatch, path, nonNil(payload))
}

// Delete sends DELETE {path}.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	_, err := g.req.Do(ctx, http.MethodDelete, path, nil)
	return err
}

// nonNil makes an empty payload encode as {} rather than null.
func nonNil(p domain.Payload) domain.Payload {
	if p == nil {
		return domain.Payload{}
	}
	return p
}
