package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/listsync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/listsync/internal/platform/logging"
)

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// logLines decodes one JSON object per log line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func completion(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, line := range logLines(t, buf) {
		if line["msg"] == "request completed" {
			return line
		}
	}
	t.Fatal("no request completed entry")
	return nil
}

func TestLogging_CompletionLevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: "INFO"},
		{status: http.StatusNotFound, wantLevel: "WARN"},
		{status: http.StatusBadGateway, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/lists", http.NoBody))

			line := completion(t, &buf)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "POST", line["method"])
			assert.Equal(t, "/api/v1/lists", line["path"])
			assert.InDelta(t, tt.status, line["status"], 0)
			assert.InDelta(t, 4, line["bytes"], 0)
		})
	}
}

func TestLogging_EnrichesLoggerWithIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var fromCtx *slog.Logger
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			fromCtx = logging.FromContext(r.Context())
			fromCtx.InfoContext(r.Context(), "inside handler")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	req.Header.Set("X-Correlation-ID", "corr-log")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, fromCtx)
	for _, line := range logLines(t, &buf) {
		if line["msg"] == "request headers" {
			continue
		}
		assert.Equal(t, "req-log", line["request_id"], "line %v", line["msg"])
		assert.Equal(t, "corr-log", line["correlation_id"], "line %v", line["msg"])
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Basic c2VjcmV0")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "c2VjcmV0")
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestLogging_NoHeadersAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.NotContains(t, buf.String(), "request headers")
}
