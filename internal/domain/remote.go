package domain

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// RemoteFields holds the raw JSON body returned by the marketing API.
type RemoteFields []byte

// String returns the value at a gjson path, or "" when absent.
func (r RemoteFields) String(path string) string {
	return gjson.GetBytes(r, path).String()
}

// Collect copies the values of the named top-level fields that are present
// in the response.
func (r RemoteFields) Collect(keys []string) Payload {
	out := make(Payload, len(keys))
	for i, res := range gjson.GetManyBytes(r, keys...) {
		if res.Exists() {
			out[keys[i]] = json.RawMessage(res.Raw)
		}
	}
	return out
}
