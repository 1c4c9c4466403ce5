package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/listsync/internal/app/fanout"
	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService. Reads are served from the local
// store; writes commit locally and are then mirrored to the marketing API.
type ListService struct {
	coordinator
	lists   ports.ListStore
	members ports.MemberStore
}

// NewListService creates a ListService. The member store is used to
// cascade local member removal when a list is deleted.
func NewListService(
	lists ports.ListStore,
	members ports.MemberStore,
	remote ports.RemoteGateway,
	gate ports.ValidationGate,
	logger *slog.Logger,
	opts ...Option,
) *ListService {
	return &ListService{
		coordinator: newCoordinator(gate, remote, logger, opts),
		lists:       lists,
		members:     members,
	}
}

// CreateList validates the payload, persists the list and creates it
// remotely. On remote failure, or when the remote response has no id, the
// list stays local only and a *domain.RemoteError is returned.
func (s *ListService) CreateList(ctx context.Context, payload domain.Payload) (l *list.List, err error) {
	defer func() { s.record(ctx, resourceList, opCreate, err) }()

	s.logger.InfoContext(ctx, "creating list")

	l = list.New(payload)
	normalized, err := s.validate(payload, list.Rules())
	if err != nil {
		s.logFailure(ctx, "list rejected", "CreateList", err)
		return nil, err
	}
	l.Accept(normalized)
	l.Assign(s.newID(), s.timestamp())

	// Past this point the outcome is applied even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	if err := s.lists.PersistList(ctx, l); err != nil {
		s.logFailure(ctx, "failed to persist list", "CreateList", err, slog.String("list_id", l.ID))
		return nil, fmt.Errorf("persisting list: %w", err)
	}

	fields, err := s.remote.Create(ctx, "lists", l.ExternalPayload())
	if err != nil {
		rerr := remoteFailure(opCreate, domain.KindList, l.ID, err)
		s.logFailure(ctx, "failed to create remote list", "CreateList", rerr, slog.String("list_id", l.ID))
		return nil, rerr
	}

	l.MarkSynced(fields)
	if err := s.lists.PersistList(ctx, l); err != nil {
		s.logFailure(ctx, "failed to record remote list id", "CreateList", err, slog.String("list_id", l.ID))
		return nil, fmt.Errorf("recording remote id of list %s: %w", l.ID, err)
	}
	if l.State() != domain.StateSynced {
		rerr := missingIdentity(domain.KindList, l.ID, "id")
		s.logFailure(ctx, "remote list has no identity", "CreateList", rerr, slog.String("list_id", l.ID))
		return nil, rerr
	}

	s.logger.InfoContext(ctx, "list created",
		slog.String("list_id", l.ID),
		slog.String("sync_state", string(l.State())),
	)
	return l, nil
}

// GetList returns a stored list.
func (s *ListService) GetList(ctx context.Context, id string) (l *list.List, err error) {
	defer func() { s.record(ctx, resourceList, opShow, err) }()

	l, err = s.findList(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to fetch list", "GetList", err, slog.String("list_id", id))
		return nil, err
	}
	return l, nil
}

// ListLists returns every stored list.
func (s *ListService) ListLists(ctx context.Context) (lists []list.List, err error) {
	defer func() { s.record(ctx, resourceList, opList, err) }()

	lists, err = s.lists.ListLists(ctx)
	if err != nil {
		s.logFailure(ctx, "failed to list lists", "ListLists", err)
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	return lists, nil
}

// UpdateList merges payload onto the stored list, validates the merged
// result, persists it and updates the remote list.
func (s *ListService) UpdateList(ctx context.Context, id string, payload domain.Payload) (l *list.List, err error) {
	defer func() { s.record(ctx, resourceList, opUpdate, err) }()

	s.logger.InfoContext(ctx, "updating list", slog.String("list_id", id))

	l, err = s.findList(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to fetch list", "UpdateList", err, slog.String("list_id", id))
		return nil, err
	}

	normalized, err := s.validate(l.Fields.Merge(payload), list.Rules())
	if err != nil {
		s.logFailure(ctx, "list update rejected", "UpdateList", err, slog.String("list_id", id))
		return nil, err
	}
	l.Accept(normalized)
	l.Touch(s.timestamp())

	ctx = context.WithoutCancel(ctx)

	if err := s.lists.PersistList(ctx, l); err != nil {
		s.logFailure(ctx, "failed to persist list", "UpdateList", err, slog.String("list_id", id))
		return nil, fmt.Errorf("persisting list: %w", err)
	}

	if l.RemoteID == nil {
		rerr := noCounterpart(opUpdate, domain.KindList, l.ID, domain.KindList, l.ID)
		s.logFailure(ctx, "list has no remote counterpart", "UpdateList", rerr, slog.String("list_id", id))
		return nil, rerr
	}

	if _, err := s.remote.Update(ctx, listPath(*l.RemoteID), l.ExternalPayload()); err != nil {
		rerr := remoteFailure(opUpdate, domain.KindList, l.ID, err)
		s.logFailure(ctx, "failed to update remote list", "UpdateList", rerr, slog.String("list_id", id))
		return nil, rerr
	}

	return l, nil
}

// DeleteList removes the list's local members and then the list, then
// deletes the remote list. A failed member removal keeps the list, so the
// delete can be retried without leaving members behind. A remote failure
// leaves the remote list orphaned.
func (s *ListService) DeleteList(ctx context.Context, id string) (err error) {
	defer func() { s.record(ctx, resourceList, opDelete, err) }()

	s.logger.InfoContext(ctx, "deleting list", slog.String("list_id", id))

	l, err := s.findList(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to fetch list", "DeleteList", err, slog.String("list_id", id))
		return err
	}

	ctx = context.WithoutCancel(ctx)

	if err := s.removeMembers(ctx, l.ID); err != nil {
		s.logFailure(ctx, "failed to remove list members", "DeleteList", err, slog.String("list_id", id))
		return fmt.Errorf("removing members of list %s: %w", l.ID, err)
	}

	if err := s.lists.RemoveList(ctx, l); err != nil {
		s.logFailure(ctx, "failed to remove list", "DeleteList", err, slog.String("list_id", id))
		return fmt.Errorf("removing list: %w", err)
	}

	if l.RemoteID == nil {
		rerr := noCounterpart(opDelete, domain.KindList, l.ID, domain.KindList, l.ID)
		s.logFailure(ctx, "list has no remote counterpart", "DeleteList", rerr, slog.String("list_id", id))
		return rerr
	}

	if err := s.remote.Delete(ctx, listPath(*l.RemoteID)); err != nil {
		rerr := remoteFailure(opDelete, domain.KindList, l.ID, err)
		s.logFailure(ctx, "failed to delete remote list", "DeleteList", rerr, slog.String("list_id", id))
		return rerr
	}

	return nil
}

// removeMembers deletes the list's local members. Remote members go with
// the remote list.
func (s *ListService) removeMembers(ctx context.Context, listID string) error {
	members, err := s.members.FindMembersByList(ctx, listID)
	if err != nil {
		return err
	}
	return fanout.Each(ctx, s.cascadeWorkers, members, func(ctx context.Context, m member.Member) error {
		return s.members.RemoveMember(ctx, &m)
	})
}

func (s *ListService) findList(ctx context.Context, id string) (*list.List, error) {
	return findList(ctx, s.lists, id)
}

// findList resolves a list or reports it as not found.
func findList(ctx context.Context, store ports.ListStore, id string) (*list.List, error) {
	l, err := store.FindList(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding list %s: %w", id, err)
	}
	if l == nil {
		return nil, &domain.NotFoundError{Kind: domain.KindList, ID: id}
	}
	return l, nil
}

func listPath(remoteID string) string {
	return "lists/" + remoteID
}
