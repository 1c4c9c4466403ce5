package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

// MemberHandler handles HTTP requests for list members.
type MemberHandler struct {
	svc ports.MemberService
}

// NewMemberHandler creates a new MemberHandler with the given service port.
func NewMemberHandler(svc ports.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// ListMembers handles GET /api/v1/lists/{listId}/members.
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListMembers(r.Context(), listID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMemberRecords(members))
}

// CreateMember handles POST /api/v1/lists/{listId}/members.
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	m, err := h.svc.CreateMember(r.Context(), listID(r), payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, m.Record())
}

// GetMember handles GET /api/v1/lists/{listId}/members/{memberId}.
func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetMember(r.Context(), listID(r), memberID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, m.Record())
}

// UpdateMember handles PUT and PATCH /api/v1/lists/{listId}/members/{memberId}.
func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	m, err := h.svc.UpdateMember(r.Context(), listID(r), memberID(r), payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, m.Record())
}

// DeleteMember handles DELETE /api/v1/lists/{listId}/members/{memberId}.
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMember(r.Context(), listID(r), memberID(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
