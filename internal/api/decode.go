package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate backs the required-field check in Decode. A single instance
// caches parsed struct metadata across calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode unmarshals JSON into v and fails when fields tagged
// `validate:"required"` are absent. Plain unmarshaling leaves missing
// fields at their zero value, so without the check an error envelope would
// satisfy any result shape. Non-struct targets skip the check.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return fmt.Errorf("response missing required fields: %w", err)
	}
	return nil
}

// Envelope is the wire shape of a structured error response.
type Envelope struct {
	Error *EnvelopeDetail `json:"error"`
}

// EnvelopeDetail carries the server's error fields.
type EnvelopeDetail struct {
	Type        string `json:"type"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	DeclineCode string `json:"decline_code"`
	Param       string `json:"param"`
	DocURL      string `json:"doc_url"`
}

// ParseEnvelope reports whether body is a structured error payload: a JSON
// object with an "error" object member. Anything else is not an envelope.
func ParseEnvelope(body []byte) (*EnvelopeDetail, bool) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.Error == nil {
		return nil, false
	}
	return env.Error, true
}
