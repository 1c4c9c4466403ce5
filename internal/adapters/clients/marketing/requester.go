package marketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/platform/httpclient"
)

// maxResponseBodySize limits how much of a success response body we read.
const maxResponseBodySize = 4 << 20 // 4 MB

// basicAuthUser is sent with the API key. The marketing API ignores the
// user name and authenticates on the password alone.
const basicAuthUser = "listsync"

// Requester centralizes the HTTP request lifecycle for the marketing API:
// request creation, authentication, JSON encoding, execution via
// httpclient.Client, response body cleanup, status validation and error
// translation.
type Requester struct {
	client *httpclient.Client
	apiKey string
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client. apiKey
// is sent as the basic-auth password on every request.
func NewRequester(client *httpclient.Client, apiKey string, logger *slog.Logger) *Requester {
	return &Requester{client: client, apiKey: apiKey, logger: logger}
}

// Do executes an HTTP request against path relative to the base URL.
//
// A non-nil payload is sent as the JSON body. Any 2xx status is success and
// the raw response body is returned (empty for 204). Other statuses are
// passed to TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, payload domain.Payload) (domain.RemoteFields, error) {
	url := r.url(path)

	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.apiKey != "" {
		req.SetBasicAuth(basicAuthUser, r.apiKey)
	}

	return r.execute(req)
}

func (r *Requester) url(path string) string {
	return strings.TrimSuffix(r.client.BaseURL(), "/") + "/" + strings.TrimPrefix(path, "/")
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code and reads the response
// body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request) (domain.RemoteFields, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Exhausted retries on a retryable status hand back the last
		// response; translate it rather than the retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !isSuccess(resp.StatusCode) {
				return nil, TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !isSuccess(resp.StatusCode) {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.String("error", translateErr.Error()),
		)
		return nil, translateErr
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return domain.RemoteFields(data), nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
