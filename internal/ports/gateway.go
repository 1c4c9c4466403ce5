package ports

import (
	"context"

	"github.com/jsamuelsen11/listsync/internal/domain"
)

// RemoteGateway defines the client port for the marketing API.
// Implemented by the marketing adapter; called by the application layer.
// Every call is single-shot from the caller's point of view and carries no
// knowledge of which local entity issued it. Paths are relative to the
// API root (e.g. "lists/{remoteId}/members/{emailId}").
type RemoteGateway interface {
	// Create issues a POST to path and returns the response body.
	Create(ctx context.Context, path string, payload domain.Payload) (domain.RemoteFields, error)

	// Update issues a PATCH to path and returns the response body.
	Update(ctx context.Context, path string, payload domain.Payload) (domain.RemoteFields, error)

	// Delete issues a DELETE to path.
	Delete(ctx context.Context, path string) error
}

// ValidationGate checks a candidate payload against declared rules.
// It returns either the normalized payload or a field-keyed map of
// failure reasons, never both.
type ValidationGate interface {
	Validate(payload domain.Payload, rules domain.Rules) (domain.Payload, map[string]string)
}
