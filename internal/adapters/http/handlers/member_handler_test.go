package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/mocks"
)

func newMemberHandler(t *testing.T) (*handlers.MemberHandler, *mocks.MockMemberService) {
	t.Helper()
	svc := mocks.NewMockMemberService(t)
	return handlers.NewMemberHandler(svc), svc
}

func memberParams(r *http.Request) *http.Request {
	return withChiParams(r, map[string]string{
		handlers.ParamListID:   "l1",
		handlers.ParamMemberID: "m1",
	})
}

func TestListMembers_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().ListMembers(mock.Anything, "l1").Return([]member.Member{*syncedMember()}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/lists/l1/members", nil),
		map[string]string{handlers.ParamListID: "l1"})
	h.ListMembers(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]map[string]any](t, rec)
	if len(resp) != 1 || resp[0]["member_id"] != "m1" {
		t.Errorf("resp = %v, want one record for m1", resp)
	}
}

func TestListMembers_UnknownList(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().ListMembers(mock.Anything, "l1").Return(nil, &domain.NotFoundError{Kind: domain.KindList, ID: "l1"})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/lists/l1/members", nil),
		map[string]string{handlers.ParamListID: "l1"})
	h.ListMembers(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestCreateMember_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().CreateMember(mock.Anything, "l1", mock.AnythingOfType("domain.Payload")).Return(syncedMember(), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, "/api/v1/lists/l1/members",
			strings.NewReader(`{"email_address":"a@b.co","status":"subscribed"}`)),
		map[string]string{handlers.ParamListID: "l1"},
	)
	h.CreateMember(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["email_id"] != member.Fingerprint("a@b.co") {
		t.Errorf("email_id = %v", resp["email_id"])
	}
	if resp["unique_email_id"] != "u-1" {
		t.Errorf("unique_email_id = %v, want u-1", resp["unique_email_id"])
	}
}

func TestCreateMember_Validation(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().CreateMember(mock.Anything, "l1", mock.Anything).Return(nil, &domain.ValidationError{
		Fields: map[string]string{"email_address": "is required", "status": "is required"},
	})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/lists/l1/members", strings.NewReader(`{}`)),
		map[string]string{handlers.ParamListID: "l1"})
	h.CreateMember(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[map[string]any](t, rec)
	if errs, ok := resp["errors"].(map[string]any); !ok || len(errs) != 2 {
		t.Errorf("errors = %v, want two fields", resp["errors"])
	}
}

func TestGetMember_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().GetMember(mock.Anything, "l1", "m1").Return(nil, &domain.NotFoundError{Kind: domain.KindMember, ID: "m1"})

	rec := httptest.NewRecorder()
	h.GetMember(rec, memberParams(httptest.NewRequest(http.MethodGet, "/api/v1/lists/l1/members/m1", nil)))

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["detail"] != "Member[m1] not found" {
		t.Errorf("detail = %v", resp["detail"])
	}
}

func TestUpdateMember_RemoteFailure(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().UpdateMember(mock.Anything, "l1", "m1", mock.Anything).Return(nil, &domain.RemoteError{
		Operation:      "update",
		Kind:           domain.KindMember,
		ResourceID:     "m1",
		Message:        "List[l1] has no remote counterpart",
		LocalCommitted: true,
	})

	rec := httptest.NewRecorder()
	req := memberParams(httptest.NewRequest(http.MethodPut, "/api/v1/lists/l1/members/m1",
		strings.NewReader(`{"status":"pending"}`)))
	h.UpdateMember(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["resource"] != "Member" {
		t.Errorf("resource = %v, want Member", resp["resource"])
	}
}

func TestDeleteMember_Success(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().DeleteMember(mock.Anything, "l1", "m1").Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteMember(rec, memberParams(httptest.NewRequest(http.MethodDelete, "/api/v1/lists/l1/members/m1", nil)))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteMember_UnknownMember(t *testing.T) {
	t.Parallel()
	h, svc := newMemberHandler(t)

	svc.EXPECT().DeleteMember(mock.Anything, "l1", "invalid-member-id").
		Return(&domain.NotFoundError{Kind: domain.KindMember, ID: "invalid-member-id"})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/lists/l1/members/invalid-member-id", nil),
		map[string]string{handlers.ParamListID: "l1", handlers.ParamMemberID: "invalid-member-id"})
	h.DeleteMember(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["detail"] != "Member[invalid-member-id] not found" {
		t.Errorf("detail = %v", resp["detail"])
	}
}
