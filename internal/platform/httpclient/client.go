// Package httpclient is the outbound HTTP stack for the marketing API.
//
// Every call made through Client.Do passes through, in order:
//
//	breaker (gobreaker) → limiter (x/time/rate) → id headers → client span → retry (backoff) → transport
//
// Only idempotent methods are retried, so a create or update is sent at most
// once per call.
//
//	client := httpclient.New(&cfg.Remote, "marketing-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/platform/telemetry"
)

// ErrRejected marks calls refused locally by the open or saturated breaker.
// No request reached the remote service.
var ErrRejected = errors.New("request rejected by circuit breaker")

// retryPolicy is the copy of config.RetryConfig the client runs with.
type retryPolicy struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	factor   float64
}

// Client performs outbound marketing API calls. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	retry   retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client from the remote settings. name labels spans, metrics
// and the health check. metrics may be nil.
func New(cfg *config.RemoteConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		limiter: newLimiter(cfg.RateLimit),
		retry: retryPolicy{
			attempts: cfg.Retry.MaxAttempts,
			initial:  cfg.Retry.InitialInterval,
			max:      cfg.Retry.MaxInterval,
			factor:   cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](c.breakerSettings(cfg.CircuitBreaker))
	return c
}

func (c *Client) breakerSettings(cfg config.CircuitBreakerConfig) gobreaker.Settings {
	trips := cfg.MaxFailures
	return gobreaker.Settings{
		Name:        c.name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= trips
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("marketing api breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// newLimiter returns nil when limiting is disabled.
func newLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

// Do sends req. The response body, when resp is non-nil, must be closed by
// the caller. That includes the case where retries ran out on a retryable
// status: resp carries the last answer and err explains the exhaustion.
// Breaker rejections return a nil resp and an error matching ErrRejected.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		propagateIDs(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var last *http.Response
		err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &last)
		endSpan(span, last, err)
		return last, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w: %w", c.name, ErrRejected, err)
	}

	c.recordCall(ctx, method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured marketing API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reads the breaker state and never touches the network. A
// half-open breaker is reported as unhealthy until a probe succeeds.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: circuit breaker half-open, probing", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: circuit breaker open", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.name, state)
	}
}

func isRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
