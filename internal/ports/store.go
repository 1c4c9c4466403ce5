package ports

import (
	"context"

	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
)

// ListStore defines the local persistence port for lists.
// Implemented by the storage adapters; called by the application layer.
type ListStore interface {
	// FindList returns the list with the given id, or nil, nil when absent.
	FindList(ctx context.Context, id string) (*list.List, error)

	// ListLists returns every stored list ordered by creation time.
	ListLists(ctx context.Context) ([]list.List, error)

	// PersistList inserts or replaces the list.
	PersistList(ctx context.Context, l *list.List) error

	// RemoveList deletes the list. Removing an absent list is not an error.
	RemoveList(ctx context.Context, l *list.List) error
}

// MemberStore defines the local persistence port for members.
// No foreign key to the owning list is enforced at this layer.
type MemberStore interface {
	// FindMember returns the member with the given id, or nil, nil when absent.
	FindMember(ctx context.Context, id string) (*member.Member, error)

	// FindMembersByList returns the members of a list ordered by creation
	// time. An empty slice is returned when the list has no members.
	FindMembersByList(ctx context.Context, listID string) ([]member.Member, error)

	// PersistMember inserts or replaces the member.
	PersistMember(ctx context.Context, m *member.Member) error

	// RemoveMember deletes the member. Removing an absent member is not an error.
	RemoveMember(ctx context.Context, m *member.Member) error
}
