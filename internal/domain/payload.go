package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// Payload is a field bag keyed by wire name. Values stay as raw JSON so
// nested structures (merge fields, stats, tags, contact blocks) are never
// destructured and round-trip through storage unchanged.
type Payload map[string]json.RawMessage

var errNotObject = errors.New("payload must be a JSON object")

// ParsePayload decodes a JSON object into a Payload. Blank input yields an
// empty payload. Values are compacted so stored and emitted bytes match.
func ParsePayload(data []byte) (Payload, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Payload{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if raw == nil {
		return nil, errNotObject
	}

	p := make(Payload, len(raw))
	for k, v := range raw {
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return nil, fmt.Errorf("compacting field %q: %w", k, err)
		}
		p[k] = buf.Bytes()
	}
	return p, nil
}

// Clone returns a copy that can be mutated without affecting p.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	maps.Copy(out, p)
	return out
}

// Merge returns p overlaid with patch. Keys absent from patch keep p's value.
func (p Payload) Merge(patch Payload) Payload {
	out := p.Clone()
	maps.Copy(out, patch)
	return out
}

// String returns the decoded string value of key, or false when the key is
// missing or not a JSON string.
func (p Payload) String(key string) (string, bool) {
	raw, ok := p[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// IsNull reports whether the value is absent or an explicit JSON null.
func IsNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Project returns the non-null values of the named keys.
func (p Payload) Project(keys []string) Payload {
	out := make(Payload, len(keys))
	for _, k := range keys {
		if v, ok := p[k]; ok && !IsNull(v) {
			out[k] = v
		}
	}
	return out
}
