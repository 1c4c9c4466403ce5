package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/listsync/internal/platform/logging"
)

// jitter spreads each delay by ±25%.
const jitter = 0.25

// errRetryableStatus is returned to backoff for 429 and 5xx answers.
var errRetryableStatus = errors.New("retryable status")

// doWithRetry sends req, replaying it on transport errors and retryable
// statuses while the policy allows. POST and PATCH get a single attempt.
// The final response, if any, is stored in *last with its body open.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, last **http.Response) error {
	if c.retry.attempts < 1 {
		return fmt.Errorf("httpclient: retry attempts must be >= 1, got %d", c.retry.attempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	tries := 1
	if replayable(req.Method) {
		tries = c.retry.attempts
	}

	attempt := 0
	send := func() (struct{}, error) {
		if *last != nil {
			discard(*last)
			*last = nil
		}
		attempt++
		rewind(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if !transient(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}

		*last = resp
		if retryableStatus(resp.StatusCode) {
			return struct{}{}, fmt.Errorf("%s answered %d: %w", c.name, resp.StatusCode, errRetryableStatus)
		}
		return struct{}{}, nil
	}

	onRetry := func(err error, wait time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying marketing api call",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("peer_service", c.name),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", tries),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	_, err = backoff.Retry(ctx, send,
		backoff.WithBackOff(c.backOff()),
		backoff.WithMaxTries(uint(tries)), //nolint:gosec // tries >= 1
		backoff.WithNotify(onRetry),
	)
	return err
}

func (c *Client) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.initial
	b.MaxInterval = c.retry.max
	b.Multiplier = c.retry.factor
	b.RandomizationFactor = jitter
	return b
}

// snapshotBody reads the body once so every attempt can resend it.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return data, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes a superseded response so its connection is reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// replayable reports whether method is safe to send more than once.
func replayable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// transient reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final.
func transient(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
