package marketing

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/listsync/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail is the error document returned by the marketing API.
type problemDetail struct {
	Title  string        `json:"title"`
	Status int           `json:"status"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail is a single field-level rejection within a problemDetail.
type errorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the marketing API. Its message is
// what the coordinator surfaces to callers as the remote failure reason.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	var b strings.Builder
	switch {
	case e.Title != "" && e.Detail != "":
		fmt.Fprintf(&b, "%d: %s: %s", e.StatusCode, e.Title, e.Detail)
	case e.Detail != "":
		fmt.Fprintf(&b, "%d: %s", e.StatusCode, e.Detail)
	case e.Title != "":
		fmt.Fprintf(&b, "%d: %s", e.StatusCode, e.Title)
	default:
		fmt.Fprintf(&b, "%d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap reports server-side and throttling failures as unavailability.
func (e *APIError) Unwrap() error {
	if e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests {
		return domain.ErrUnavailable
	}
	return nil
}

// TranslateHTTPError maps a non-2xx marketing API response to an *APIError.
// The body is parsed as a problem document when the content type is JSON.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Title:      pd.Title,
		Detail:     pd.Detail,
	}
	if len(pd.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(pd.Errors))
		for _, d := range pd.Errors {
			field := d.Field
			if field == "" {
				field = "_"
			}
			apiErr.Fields[field] = d.Message
		}
	}
	return apiErr
}

// parseProblemDetail reads and parses a problem document from the response.
// Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
