package dto

import (
	"errors"
	"io"
	"net/http"

	"github.com/jsamuelsen11/listsync/internal/domain"
)

// MaxBodyBytes is the maximum accepted request body size (1 MB).
const MaxBodyBytes = 1 << 20

// DecodePayload reads the request body as a JSON object. An empty body is an
// empty payload. Malformed or oversized bodies are reported as a
// *domain.ValidationError on the "body" field.
func DecodePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	if r.Body == nil {
		return domain.Payload{}, nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, bodyError("too large")
		}
		return nil, bodyError("could not be read")
	}

	p, err := domain.ParsePayload(data)
	if err != nil {
		return nil, bodyError("must be a JSON object")
	}
	return p, nil
}

func bodyError(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{"body": msg}}
}
