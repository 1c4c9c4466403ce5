// Package app provides the synchronization coordinator: application services
// that apply every list and member write to the local store first and then
// to the marketing API, without rollback when the remote step fails.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/platform/telemetry"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// Operation names used in logs, metrics and remote errors.
const (
	opCreate = "create"
	opShow   = "show"
	opList   = "list"
	opUpdate = "update"
	opDelete = "delete"
)

// Metric resource labels.
const (
	resourceList   = "list"
	resourceMember = "member"
)

// defaultCascadeWorkers bounds concurrent member removals when a list is
// deleted.
const defaultCascadeWorkers = 4

// Option configures the coordinator shared by ListService and MemberService.
type Option func(*coordinator)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *coordinator) {
		c.now = now
	}
}

// WithIDGenerator overrides how local ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(c *coordinator) {
		c.newID = newID
	}
}

// WithMetrics records an outcome for every operation.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *coordinator) {
		c.metrics = m
	}
}

// WithCascadeWorkers sets how many members are removed concurrently when a
// list is deleted.
func WithCascadeWorkers(n int) Option {
	return func(c *coordinator) {
		if n > 0 {
			c.cascadeWorkers = n
		}
	}
}

// coordinator holds what both services need to run a dual write.
type coordinator struct {
	gate           ports.ValidationGate
	remote         ports.RemoteGateway
	metrics        *telemetry.Metrics
	logger         *slog.Logger
	now            func() time.Time
	newID          func() string
	cascadeWorkers int
}

func newCoordinator(gate ports.ValidationGate, remote ports.RemoteGateway, logger *slog.Logger, opts []Option) coordinator {
	c := coordinator{
		gate:           gate,
		remote:         remote,
		logger:         logger,
		now:            time.Now,
		newID:          uuid.NewString,
		cascadeWorkers: defaultCascadeWorkers,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// timestamp returns the current time at the precision every store keeps.
func (c *coordinator) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Microsecond)
}

// validate runs the gate and converts failures to a *domain.ValidationError.
func (c *coordinator) validate(payload domain.Payload, rules domain.Rules) (domain.Payload, error) {
	normalized, errs := c.gate.Validate(payload, rules)
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}
	return normalized, nil
}

// record counts an operation outcome derived from its error. Reads never
// touch the marketing API, so a successful one counts as ok.
func (c *coordinator) record(ctx context.Context, res, op string, err error) {
	outcome := outcomeOf(err)
	if err == nil && (op == opShow || op == opList) {
		outcome = telemetry.OutcomeOK
	}
	c.metrics.RecordSync(ctx, res, op, outcome)
}

// remoteFailure builds the error returned when the remote step of a write
// fails after the local step committed.
func remoteFailure(op string, kind domain.Kind, id string, err error) *domain.RemoteError {
	return &domain.RemoteError{
		Operation:      op,
		Kind:           kind,
		ResourceID:     id,
		Message:        err.Error(),
		LocalCommitted: true,
		Err:            err,
	}
}

// missingIdentity is the failure for a remote create that answered 2xx
// without the identity field, so the record stays local only.
func missingIdentity(kind domain.Kind, id, field string) *domain.RemoteError {
	return &domain.RemoteError{
		Operation:       opCreate,
		Kind:            kind,
		ResourceID:      id,
		Message:         fmt.Sprintf("remote create of %s[%s] succeeded but the response carried no %s", kind, id, field),
		LocalCommitted:  true,
		RemoteCommitted: true,
	}
}

// noCounterpart is the remote failure for a write on kind/id whose remote
// target does not exist because the remote create of owner/ownerID never
// succeeded.
func noCounterpart(op string, kind domain.Kind, id string, owner domain.Kind, ownerID string) *domain.RemoteError {
	return &domain.RemoteError{
		Operation:      op,
		Kind:           kind,
		ResourceID:     id,
		Message:        fmt.Sprintf("%s[%s] has no remote counterpart", owner, ownerID),
		LocalCommitted: true,
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeSynced
	case errors.Is(err, domain.ErrRemoteService):
		return telemetry.OutcomeLocalOnly
	case errors.Is(err, domain.ErrValidation):
		return telemetry.OutcomeRejected
	case errors.Is(err, domain.ErrNotFound):
		return telemetry.OutcomeNotFound
	default:
		return telemetry.OutcomeLocalFailed
	}
}

// logFailure logs a failed operation at a level matching its cause.
func (c *coordinator) logFailure(ctx context.Context, msg, operation string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		level = slog.LevelWarn
	}
	attrs = append(attrs,
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	c.logger.LogAttrs(ctx, level, msg, attrs...)
}
