package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/listsync/internal/adapters/http"
	"github.com/jsamuelsen11/listsync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/mocks"
)

type testRouter struct {
	handler  http.Handler
	lists    *mocks.MockListService
	members  *mocks.MockMemberService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, metrics http.Handler, mws ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	tr := testRouter{
		lists:    mocks.NewMockListService(t),
		members:  mocks.NewMockMemberService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}
	tr.handler = adapthttp.NewRouter(adapthttp.Routes{
		Lists:   handlers.NewListHandler(tr.lists),
		Members: handlers.NewMemberHandler(tr.members),
		Health:  handlers.NewHealthHandler(tr.registry),
		Metrics: metrics,
	}, mws...)
	return tr
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, nil)

	expected := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/lists",
		"POST /api/v1/lists",
		"GET /api/v1/lists/{listId}",
		"PUT /api/v1/lists/{listId}",
		"PATCH /api/v1/lists/{listId}",
		"DELETE /api/v1/lists/{listId}",
		"GET /api/v1/lists/{listId}/members",
		"POST /api/v1/lists/{listId}/members",
		"GET /api/v1/lists/{listId}/members/{memberId}",
		"PUT /api/v1/lists/{listId}/members/{memberId}",
		"PATCH /api/v1/lists/{listId}/members/{memberId}",
		"DELETE /api/v1/lists/{listId}/members/{memberId}",
	}

	mux, ok := tr.handler.(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := make(map[string]bool)
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}))

	for _, key := range expected {
		assert.True(t, registered[key], "route %s not registered", key)
	}
	assert.False(t, registered["GET /metrics"], "metrics mounted without a handler")
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}
	tr := newTestRouter(t, nil, mw)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRouter_RoutesMemberParams(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, nil)
	tr.members.EXPECT().UpdateMember(mock.Anything, "l1", "m1", mock.Anything).Return(&member.Member{ID: "m1", ListID: "l1"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/lists/l1/members/m1", strings.NewReader(`{"vip":true}`))
	tr.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownPathIsProblem(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/lists", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "listsync_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	tr := newTestRouter(t, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "listsync_test_total 1")
}
