package stripekit

import (
	"errors"
	"fmt"

	"github.com/stripekit/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when the environment holds no key.
	ErrMissingAPIKey = errors.New("publishable API key is required")

	// ErrClientClosed is returned when calls are made on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnsupportedMethod is returned for request specs whose method is
	// neither GET nor POST.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCardDeclined is returned when the server declines a charge.
	ErrCardDeclined = errors.New("card declined")
)

// StripeKitError is implemented by all SDK errors.
type StripeKitError interface {
	error
	StripeKitError() // marker method
}

// APIError is a structured error returned by the API itself. Code and
// DeclineCode let callers branch on declined-payment conditions.
type APIError struct {
	Type        string
	Code        string
	Message     string
	DeclineCode string
	Param       string
	DocURL      string
	StatusCode  int
	RequestID   string // if returned by server
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// StripeKitError implements the StripeKitError interface.
func (e *APIError) StripeKitError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if target == ErrCardDeclined {
		return e.Code == "card_declined"
	}
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// TransportError represents a network-level failure: the request never
// produced an HTTP response.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StripeKitError implements the StripeKitError interface.
func (e *TransportError) StripeKitError() {}

// DecodeError reports response bytes that matched neither the expected
// result shape nor the error envelope. Err is always the original typed
// decode failure, never the envelope parser's.
type DecodeError struct {
	Err        error
	StatusCode int
	RequestID  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StripeKitError implements the StripeKitError interface.
func (e *DecodeError) StripeKitError() {}

// EncodeError reports a caller-side object that could not be serialized
// before sending. It reaches the callback like every other failure; no
// call path fails synchronously.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode parameters: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// StripeKitError implements the StripeKitError interface.
func (e *EncodeError) StripeKitError() {}

// apiErrorFromEnvelope lifts a wire envelope into the public error type.
func apiErrorFromEnvelope(detail *api.EnvelopeDetail, statusCode int, requestID string) *APIError {
	return &APIError{
		Type:        detail.Type,
		Code:        detail.Code,
		Message:     detail.Message,
		DeclineCode: detail.DeclineCode,
		Param:       detail.Param,
		DocURL:      detail.DocURL,
		StatusCode:  statusCode,
		RequestID:   requestID,
	}
}
