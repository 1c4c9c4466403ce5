package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func syncedList() *list.List {
	remote := "abc123"
	return &list.List{
		ID:        "l1",
		RemoteID:  &remote,
		Fields:    domain.Payload{"name": json.RawMessage(`"News"`)},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func syncedMember() *member.Member {
	unique := "u-1"
	return &member.Member{
		ID:            "m1",
		ListID:        "l1",
		EmailID:       member.Fingerprint("a@b.co"),
		UniqueEmailID: &unique,
		Fields: domain.Payload{
			"email_address": json.RawMessage(`"a@b.co"`),
			"status":        json.RawMessage(`"subscribed"`),
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
