package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrRemoteService = errors.New("remote service failed")
	ErrUnavailable   = errors.New("unavailable")
)

// Kind names the resource type carried by a NotFoundError.
type Kind string

const (
	KindList   Kind = "List"
	KindMember Kind = "Member"
)

// NotFoundError reports a list or member that does not exist locally.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s[%s] not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RemoteError reports a failed call to the marketing API. LocalCommitted
// and RemoteCommitted record which side of the dual write took effect, so a
// caller can tell "local write happened, remote did not" from "nothing
// happened". Kind and ResourceID name the local record the write concerned.
// It matches ErrRemoteService and the underlying cause.
type RemoteError struct {
	Operation       string
	Kind            Kind
	ResourceID      string
	Message         string
	LocalCommitted  bool
	RemoteCommitted bool
	Err             error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ErrRemoteService.Error()
}

func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRemoteService}
	}
	return []error{ErrRemoteService, e.Err}
}
