// Package validation checks candidate payloads against declared field rules
// before any write leaves the process.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

const msgRequired = "is required"

var _ ports.ValidationGate = (*Gate)(nil)

// Gate validates payloads against domain.Rules. It fails closed: every
// violation is reported and nothing is returned unless all rules pass.
type Gate struct {
	validate *validator.Validate
}

// NewGate creates a Gate.
func NewGate() *Gate {
	return &Gate{validate: validator.New()}
}

// Validate returns the payload restricted to declared top-level fields, or
// a field-keyed map of failure reasons.
func (g *Gate) Validate(p domain.Payload, rules domain.Rules) (domain.Payload, map[string]string) {
	fields := make(map[string]string)

	for key, rule := range rules {
		raw, parentOK := lookup(p, key)
		if !parentOK {
			// Parent object is missing or malformed; reported under the parent key.
			continue
		}
		if msg := g.check(raw, rule); msg != "" {
			fields[key] = msg
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}

	normalized := make(domain.Payload, len(p))
	for key, raw := range p {
		if _, ok := rules[key]; ok {
			normalized[key] = raw
		}
	}
	return normalized, nil
}

func (g *Gate) check(raw json.RawMessage, rule domain.Rule) string {
	if domain.IsNull(raw) {
		if rule.Required {
			return msgRequired
		}
		return ""
	}

	if !hasType(raw, rule.Type) {
		return "must be " + article(rule.Type)
	}
	if rule.Type != domain.TypeString {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "must be a string"
	}
	if strings.TrimSpace(s) == "" {
		if rule.Required {
			return msgRequired
		}
		// Blank passes only where no enum or format constrains the value.
		if len(rule.Enum) == 0 && rule.Format == "" {
			return ""
		}
	}

	if len(rule.Enum) > 0 {
		if msg := g.checkTag(s, "oneof="+strings.Join(rule.Enum, " ")); msg != "" {
			return msg
		}
	}
	if rule.Format != "" {
		return g.checkTag(s, rule.Format)
	}
	return ""
}

func (g *Gate) checkTag(value, tag string) string {
	err := g.validate.Var(value, tag)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return message(verrs[0])
	}
	return "is invalid"
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid email address"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// lookup resolves a possibly dotted key. The second result is false when an
// intermediate object is absent, null or not an object.
func lookup(p domain.Payload, key string) (json.RawMessage, bool) {
	segments := strings.Split(key, ".")
	current := map[string]json.RawMessage(p)

	for _, seg := range segments[:len(segments)-1] {
		raw := current[seg]
		if domain.IsNull(raw) || !hasType(raw, domain.TypeObject) {
			return nil, false
		}
		var next map[string]json.RawMessage
		if err := json.Unmarshal(raw, &next); err != nil {
			return nil, false
		}
		current = next
	}
	return current[segments[len(segments)-1]], true
}

func hasType(raw json.RawMessage, t domain.FieldType) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	switch t {
	case domain.TypeAny:
		return true
	case domain.TypeString:
		return trimmed[0] == '"'
	case domain.TypeBoolean:
		return bytes.Equal(trimmed, []byte("true")) || bytes.Equal(trimmed, []byte("false"))
	case domain.TypeObject:
		return trimmed[0] == '{'
	case domain.TypeArray:
		return trimmed[0] == '['
	case domain.TypeInteger:
		if trimmed[0] == '"' {
			return false
		}
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return false
		}
		_, err := n.Int64()
		return err == nil
	default:
		return false
	}
}

func article(t domain.FieldType) string {
	switch t {
	case domain.TypeInteger, domain.TypeObject, domain.TypeArray:
		return "an " + string(t)
	default:
		return "a " + string(t)
	}
}
