package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/platform/logging"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Remote failures add
// extension members saying which side of the dual write took effect.
type ErrorResponse struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`

	Resource        string `json:"resource,omitempty"`
	ResourceID      string `json:"resource_id,omitempty"`
	LocalCommitted  *bool  `json:"local_committed,omitempty"`
	RemoteCommitted *bool  `json:"remote_committed,omitempty"`
}

// statusBySentinel is checked in order. Remote failures come first because
// their cause may itself wrap ErrNotFound from the marketing API.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrRemoteService, http.StatusBadGateway},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// Problem builds a bare problem document for status.
func Problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse describes err. Unrecognised errors become a 500 with no
// detail.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			status = m.status
			break
		}
	}

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = ""
	}
	resp := Problem(r, status, detail)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Detail = "Invalid data given"
		resp.Errors = verr.Fields
	}
	var rerr *domain.RemoteError
	if errors.As(err, &rerr) {
		resp.Resource = string(rerr.Kind)
		resp.ResourceID = rerr.ResourceID
		resp.LocalCommitted = &rerr.LocalCommitted
		resp.RemoteCommitted = &rerr.RemoteCommitted
	}
	return resp
}

// WriteErrorResponse writes the problem document for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes resp with the problem+json content type.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Any("error", err),
		)
	}
}
