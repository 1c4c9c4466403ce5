package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// ListHandler handles HTTP requests for mailing lists.
type ListHandler struct {
	svc ports.ListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// ListLists handles GET /api/v1/lists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListRecords(lists))
}

// CreateList handles POST /api/v1/lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	l, err := h.svc.CreateList(r.Context(), payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, l.Record())
}

// GetList handles GET /api/v1/lists/{listId}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetList(r.Context(), listID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, l.Record())
}

// UpdateList handles PUT and PATCH /api/v1/lists/{listId}. Both merge the
// body onto the stored list.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	l, err := h.svc.UpdateList(r.Context(), listID(r), payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, l.Record())
}

// DeleteList handles DELETE /api/v1/lists/{listId}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteList(r.Context(), listID(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
