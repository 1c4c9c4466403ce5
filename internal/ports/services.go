package ports

import (
	"context"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
)

// ListService defines the service port for list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Writes are applied to the local store first and then to the marketing API.
// A *domain.RemoteError means the local write is kept while the remote one
// failed.
type ListService interface {
	// CreateList validates the payload, stores the list and creates it
	// remotely. Returns domain.ErrValidation if the payload fails validation.
	CreateList(ctx context.Context, payload domain.Payload) (*list.List, error)

	// GetList returns a stored list.
	// Returns domain.ErrNotFound if the list does not exist.
	GetList(ctx context.Context, id string) (*list.List, error)

	// ListLists returns every stored list.
	ListLists(ctx context.Context) ([]list.List, error)

	// UpdateList merges the payload onto the stored list, validates the
	// result, stores it and updates the remote list.
	UpdateList(ctx context.Context, id string, payload domain.Payload) (*list.List, error)

	// DeleteList removes the list and its members locally, then deletes the
	// remote list.
	DeleteList(ctx context.Context, id string) error
}

// MemberService defines the service port for list member operations.
// Every operation resolves the owning list before any member-level check.
type MemberService interface {
	// CreateMember validates the payload, stores the member under the list
	// and creates it remotely.
	// Returns domain.ErrNotFound if the list does not exist.
	// Returns domain.ErrValidation if the payload fails validation.
	CreateMember(ctx context.Context, listID string, payload domain.Payload) (*member.Member, error)

	// GetMember returns a stored member of the list.
	// Returns domain.ErrNotFound if the list or member does not exist.
	GetMember(ctx context.Context, listID, memberID string) (*member.Member, error)

	// ListMembers returns the stored members of the list.
	// Returns domain.ErrNotFound if the list does not exist.
	ListMembers(ctx context.Context, listID string) ([]member.Member, error)

	// UpdateMember merges the payload onto the stored member, validates the
	// result, stores it and updates the remote member.
	UpdateMember(ctx context.Context, listID, memberID string, payload domain.Payload) (*member.Member, error)

	// DeleteMember removes the member locally, then deletes it remotely.
	DeleteMember(ctx context.Context, listID, memberID string) error
}
