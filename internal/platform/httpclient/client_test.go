package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/platform/httpclient"
	"github.com/jsamuelsen11/listsync/internal/platform/telemetry"
)

func remoteConfig(baseURL string) *config.RemoteConfig {
	return &config.RemoteConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(t *testing.T, cfg *config.RemoteConfig) *httpclient.Client {
	t.Helper()
	return httpclient.New(cfg, "marketing-api", nil, slog.New(slog.DiscardHandler))
}

// do sends a request and closes any response, returning its status.
func do(t *testing.T, c *httpclient.Client, ctx context.Context, method, url, body string) (int, error) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	require.NoError(t, err)

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, err
}

// countingServer answers each call with the next status in statuses,
// repeating the last one.
func countingServer(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(calls.Add(1)) - 1
		w.WriteHeader(statuses[min(n, len(statuses)-1)])
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestDo_ReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lists", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"abc123"}`)
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, remoteConfig(srv.URL))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/lists", http.NoBody)
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc123"}`, string(body))
}

func TestDo_RetriesIdempotentMethods(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			srv, calls := countingServer(t, http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusNoContent)
			status, err := do(t, newClient(t, remoteConfig(srv.URL)), context.Background(), method, srv.URL+"/lists/abc", "")

			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, status)
			assert.Equal(t, int32(3), calls.Load())
		})
	}
}

func TestDo_WritesAreSentOnce(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodPost, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			srv, calls := countingServer(t, http.StatusBadGateway, http.StatusOK)
			status, err := do(t, newClient(t, remoteConfig(srv.URL)), context.Background(), method, srv.URL+"/lists", `{"name":"News"}`)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadGateway, status, "last response handed back")
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestDo_ClientErrorsAreFinal(t *testing.T) {
	t.Parallel()

	srv, calls := countingServer(t, http.StatusNotFound)
	status, err := do(t, newClient(t, remoteConfig(srv.URL)), context.Background(), http.MethodGet, srv.URL+"/lists/gone", "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_ExhaustedRetriesKeepLastResponse(t *testing.T) {
	t.Parallel()

	srv, calls := countingServer(t, http.StatusInternalServerError)
	status, err := do(t, newClient(t, remoteConfig(srv.URL)), context.Background(), http.MethodDelete, srv.URL+"/lists/abc", "")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_ReplaysBodyOnRetry(t *testing.T) {
	t.Parallel()

	var bodies []string
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	status, err := do(t, newClient(t, remoteConfig(srv.URL)), context.Background(), http.MethodPut, srv.URL+"/lists/abc", `{"name":"News"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{`{"name":"News"}`, `{"name":"News"}`}, bodies)
}

func TestDo_PropagatesIDs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get(httpclient.HeaderRequestID))
		assert.Equal(t, "corr-1", r.Header.Get(httpclient.HeaderCorrelationID))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx := httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1")
	_, err := do(t, newClient(t, remoteConfig(srv.URL)), ctx, http.MethodGet, srv.URL+"/lists", "")
	require.NoError(t, err)
}

func TestDo_OmitsMissingIDs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(httpclient.HeaderRequestID))
		assert.Empty(t, r.Header.Get(httpclient.HeaderCorrelationID))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	_, err := do(t, newClient(t, remoteConfig(srv.URL)), context.Background(), http.MethodGet, srv.URL+"/lists", "")
	require.NoError(t, err)
}

func TestDo_RateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	srv, calls := countingServer(t, http.StatusOK)
	cfg := remoteConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	c := newClient(t, cfg)

	_, err := do(t, c, context.Background(), http.MethodGet, srv.URL+"/lists", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = do(t, c, ctx, http.MethodGet, srv.URL+"/lists", "")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_BreakerOpensAndRejects(t *testing.T) {
	t.Parallel()

	srv, calls := countingServer(t, http.StatusInternalServerError)
	cfg := remoteConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 2
	cfg.CircuitBreaker.Timeout = time.Minute
	c := newClient(t, cfg)

	for range 2 {
		_, err := do(t, c, context.Background(), http.MethodGet, srv.URL+"/lists", "")
		require.Error(t, err)
	}
	require.Error(t, c.HealthCheck(context.Background()))

	status, err := do(t, c, context.Background(), http.MethodPost, srv.URL+"/lists", `{}`)
	require.ErrorIs(t, err, httpclient.ErrRejected)
	assert.Zero(t, status)
	assert.Equal(t, int32(2), calls.Load(), "rejected call never sent")
}

func TestDo_BreakerRecoversAfterTimeout(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, http.StatusInternalServerError, http.StatusInternalServerError, http.StatusOK)
	cfg := remoteConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 2
	cfg.CircuitBreaker.Timeout = 30 * time.Millisecond
	c := newClient(t, cfg)

	for range 2 {
		_, _ = do(t, c, context.Background(), http.MethodGet, srv.URL+"/lists", "")
	}
	require.Error(t, c.HealthCheck(context.Background()))

	time.Sleep(50 * time.Millisecond)
	assert.ErrorContains(t, c.HealthCheck(context.Background()), "half-open")

	status, err := do(t, c, context.Background(), http.MethodGet, srv.URL+"/lists", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestDo_CanceledContextStopsRetries(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, http.StatusServiceUnavailable)
	cfg := remoteConfig(srv.URL)
	cfg.Retry.MaxAttempts = 50
	cfg.Retry.InitialInterval = 20 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := do(t, newClient(t, cfg), ctx, http.MethodGet, srv.URL+"/lists", "")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDo_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	require.NoError(t, err)

	srv, _ := countingServer(t, http.StatusOK)
	c := httpclient.New(remoteConfig(srv.URL), "marketing-api", metrics, nil)

	_, err = do(t, c, context.Background(), http.MethodGet, srv.URL+"/lists", "")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "http.client.request.total" {
				for _, dp := range sum.DataPoints {
					result, _ := dp.Attributes.Value(telemetry.AttrResult)
					assert.Equal(t, "success", result.AsString())
					total += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(1), total)
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	c := newClient(t, remoteConfig("https://us1.api.mailchimp.com/3.0"))
	assert.Equal(t, "marketing-api", c.Name())
	assert.Equal(t, "https://us1.api.mailchimp.com/3.0", c.BaseURL())
	assert.NoError(t, c.HealthCheck(context.Background()))
}
