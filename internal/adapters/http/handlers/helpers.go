// Package handlers provides the HTTP handlers for lists, members and health.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listsync/internal/domain"
)

// Path parameter names shared with the router.
const (
	ParamListID   = "listId"
	ParamMemberID = "memberId"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// decodePayload reads the request body. On failure it writes a 400 problem
// response and returns false.
func decodePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, bool) {
	p, err := dto.DecodePayload(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, false
	}
	return p, true
}

func listID(r *http.Request) string {
	return chi.URLParam(r, ParamListID)
}

func memberID(r *http.Request) string {
	return chi.URLParam(r, ParamMemberID)
}
