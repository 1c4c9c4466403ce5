package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// Compile-time check that MemberService implements ports.MemberService.
var _ ports.MemberService = (*MemberService)(nil)

// MemberService implements ports.MemberService. Every operation resolves
// the owning list first; remote member paths are keyed by the list's remote
// id and the member's email fingerprint.
type MemberService struct {
	coordinator
	lists   ports.ListStore
	members ports.MemberStore
}

// NewMemberService creates a MemberService.
func NewMemberService(
	lists ports.ListStore,
	members ports.MemberStore,
	remote ports.RemoteGateway,
	gate ports.ValidationGate,
	logger *slog.Logger,
	opts ...Option,
) *MemberService {
	return &MemberService{
		coordinator: newCoordinator(gate, remote, logger, opts),
		lists:       lists,
		members:     members,
	}
}

// CreateMember validates the payload, persists the member under the list and
// creates it remotely. On remote failure, or when the remote response has no
// unique_email_id, the member stays local only and a *domain.RemoteError is
// returned.
func (s *MemberService) CreateMember(
	ctx context.Context, listID string, payload domain.Payload,
) (m *member.Member, err error) {
	defer func() { s.record(ctx, resourceMember, opCreate, err) }()

	s.logger.InfoContext(ctx, "creating member", slog.String("list_id", listID))

	l, err := findList(ctx, s.lists, listID)
	if err != nil {
		s.logFailure(ctx, "failed to fetch list", "CreateMember", err, slog.String("list_id", listID))
		return nil, err
	}

	m = member.New(payload)
	normalized, err := s.validate(payload, member.Rules())
	if err != nil {
		s.logFailure(ctx, "member rejected", "CreateMember", err, slog.String("list_id", listID))
		return nil, err
	}
	m.Accept(normalized)
	m.Assign(s.newID(), l.ID, s.timestamp())

	ctx = context.WithoutCancel(ctx)
	attrs := []slog.Attr{slog.String("list_id", l.ID), slog.String("member_id", m.ID)}

	if err := s.members.PersistMember(ctx, m); err != nil {
		s.logFailure(ctx, "failed to persist member", "CreateMember", err, attrs...)
		return nil, fmt.Errorf("persisting member: %w", err)
	}

	if l.RemoteID == nil {
		rerr := noCounterpart(opCreate, domain.KindMember, m.ID, domain.KindList, l.ID)
		s.logFailure(ctx, "list has no remote counterpart", "CreateMember", rerr, attrs...)
		return nil, rerr
	}

	fields, err := s.remote.Create(ctx, membersPath(*l.RemoteID), m.ExternalPayload())
	if err != nil {
		rerr := remoteFailure(opCreate, domain.KindMember, m.ID, err)
		s.logFailure(ctx, "failed to create remote member", "CreateMember", rerr, attrs...)
		return nil, rerr
	}

	m.MarkSynced(fields)
	if err := s.members.PersistMember(ctx, m); err != nil {
		s.logFailure(ctx, "failed to record remote member id", "CreateMember", err, attrs...)
		return nil, fmt.Errorf("recording remote id of member %s: %w", m.ID, err)
	}
	if m.State() != domain.StateSynced {
		rerr := missingIdentity(domain.KindMember, m.ID, "unique_email_id")
		s.logFailure(ctx, "remote member has no identity", "CreateMember", rerr, attrs...)
		return nil, rerr
	}

	s.logger.InfoContext(ctx, "member created",
		slog.String("list_id", l.ID),
		slog.String("member_id", m.ID),
		slog.String("sync_state", string(m.State())),
	)
	return m, nil
}

// GetMember returns a stored member of the list.
func (s *MemberService) GetMember(ctx context.Context, listID, memberID string) (m *member.Member, err error) {
	defer func() { s.record(ctx, resourceMember, opShow, err) }()

	_, m, err = s.resolve(ctx, listID, memberID)
	if err != nil {
		s.logFailure(ctx, "failed to fetch member", "GetMember", err,
			slog.String("list_id", listID), slog.String("member_id", memberID))
		return nil, err
	}
	return m, nil
}

// ListMembers returns the stored members of the list; empty when it has none.
func (s *MemberService) ListMembers(ctx context.Context, listID string) (members []member.Member, err error) {
	defer func() { s.record(ctx, resourceMember, opList, err) }()

	l, err := findList(ctx, s.lists, listID)
	if err != nil {
		s.logFailure(ctx, "failed to fetch list", "ListMembers", err, slog.String("list_id", listID))
		return nil, err
	}

	members, err = s.members.FindMembersByList(ctx, l.ID)
	if err != nil {
		s.logFailure(ctx, "failed to list members", "ListMembers", err, slog.String("list_id", listID))
		return nil, fmt.Errorf("listing members of list %s: %w", l.ID, err)
	}
	return members, nil
}

// UpdateMember merges payload onto the stored member, validates the merged
// result, persists it and updates the remote member. When the email address
// changes the remote call still targets the previous fingerprint.
func (s *MemberService) UpdateMember(
	ctx context.Context, listID, memberID string, payload domain.Payload,
) (m *member.Member, err error) {
	defer func() { s.record(ctx, resourceMember, opUpdate, err) }()

	attrs := []slog.Attr{slog.String("list_id", listID), slog.String("member_id", memberID)}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "updating member", attrs...)

	l, m, err := s.resolve(ctx, listID, memberID)
	if err != nil {
		s.logFailure(ctx, "failed to fetch member", "UpdateMember", err, attrs...)
		return nil, err
	}

	normalized, err := s.validate(m.Fields.Merge(payload), member.Rules())
	if err != nil {
		s.logFailure(ctx, "member update rejected", "UpdateMember", err, attrs...)
		return nil, err
	}
	previousEmailID := m.EmailID
	m.Accept(normalized)
	m.Touch(s.timestamp())

	ctx = context.WithoutCancel(ctx)

	if err := s.members.PersistMember(ctx, m); err != nil {
		s.logFailure(ctx, "failed to persist member", "UpdateMember", err, attrs...)
		return nil, fmt.Errorf("persisting member: %w", err)
	}

	if l.RemoteID == nil {
		rerr := noCounterpart(opUpdate, domain.KindMember, m.ID, domain.KindList, l.ID)
		s.logFailure(ctx, "list has no remote counterpart", "UpdateMember", rerr, attrs...)
		return nil, rerr
	}

	path := memberPath(*l.RemoteID, previousEmailID)
	if _, err := s.remote.Update(ctx, path, m.ExternalPayload()); err != nil {
		rerr := remoteFailure(opUpdate, domain.KindMember, m.ID, err)
		s.logFailure(ctx, "failed to update remote member", "UpdateMember", rerr, attrs...)
		return nil, rerr
	}

	return m, nil
}

// DeleteMember removes the member locally, then deletes it remotely. A
// remote failure leaves the remote member orphaned.
func (s *MemberService) DeleteMember(ctx context.Context, listID, memberID string) (err error) {
	defer func() { s.record(ctx, resourceMember, opDelete, err) }()

	attrs := []slog.Attr{slog.String("list_id", listID), slog.String("member_id", memberID)}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "deleting member", attrs...)

	l, m, err := s.resolve(ctx, listID, memberID)
	if err != nil {
		s.logFailure(ctx, "failed to fetch member", "DeleteMember", err, attrs...)
		return err
	}

	ctx = context.WithoutCancel(ctx)

	if err := s.members.RemoveMember(ctx, m); err != nil {
		s.logFailure(ctx, "failed to remove member", "DeleteMember", err, attrs...)
		return fmt.Errorf("removing member: %w", err)
	}

	if l.RemoteID == nil {
		rerr := noCounterpart(opDelete, domain.KindMember, m.ID, domain.KindList, l.ID)
		s.logFailure(ctx, "list has no remote counterpart", "DeleteMember", rerr, attrs...)
		return rerr
	}

	if err := s.remote.Delete(ctx, memberPath(*l.RemoteID, m.EmailID)); err != nil {
		rerr := remoteFailure(opDelete, domain.KindMember, m.ID, err)
		s.logFailure(ctx, "failed to delete remote member", "DeleteMember", rerr, attrs...)
		return rerr
	}

	return nil
}

// resolve loads the list and then the member, treating a member that belongs
// to another list as not found.
func (s *MemberService) resolve(ctx context.Context, listID, memberID string) (*list.List, *member.Member, error) {
	l, err := findList(ctx, s.lists, listID)
	if err != nil {
		return nil, nil, err
	}

	m, err := s.members.FindMember(ctx, memberID)
	if err != nil {
		return nil, nil, fmt.Errorf("finding member %s: %w", memberID, err)
	}
	if m == nil || m.ListID != l.ID {
		return nil, nil, &domain.NotFoundError{Kind: domain.KindMember, ID: memberID}
	}
	return l, m, nil
}

func membersPath(remoteListID string) string {
	return listPath(remoteListID) + "/members"
}

func memberPath(remoteListID, emailID string) string {
	return membersPath(remoteListID) + "/" + emailID
}
