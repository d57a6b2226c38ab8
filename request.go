package stripekit

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stripekit/client-go/form"
	"github.com/stripekit/client-go/internal/api"
)

// RequestSpec describes one API call before composition. Specs are created
// per call and never reused.
type RequestSpec struct {
	// Method is http.MethodGet or http.MethodPost.
	Method string
	// Path is the resource path under the API origin, such as "/tokens".
	Path string
	// Params is the parameter tree. May be nil.
	Params *form.Values
	// EphemeralKeySecret substitutes for the configured key's bearer token
	// on this call only.
	EphemeralKeySecret string
	// IdempotencyKey pins the Idempotency-Key header for a POST. When
	// empty, the builder generates one.
	IdempotencyKey string
	// Headers merge into the composed set last and win on conflict.
	Headers map[string]string
}

// ComposedRequest is the fully assembled wire request handed to the
// transport. It is immutable once built.
type ComposedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// RawResponse is what a transport yields: status, headers, and the raw
// body bytes of the HTTP response.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// RequestID extracts the server-assigned request id, when present.
func (r *RawResponse) RequestID() string {
	return r.Header.Get("Request-Id")
}

// File is an upload payload for [UploadFile].
type File struct {
	// Name is the filename reported in the multipart form.
	Name string
	// Data is the file content.
	Data []byte
}

// compose builds the wire request for spec against one configuration
// snapshot. The form-encoded paths cannot fail; malformed parameters were
// already skipped during coercion.
func compose(cfg callConfig, spec RequestSpec) *ComposedRequest {
	encoded := spec.Params.Encode()

	creq := &ComposedRequest{Method: spec.Method}
	contentHeaders := map[string]string{}

	if spec.Method == http.MethodPost {
		creq.URL = api.JoinURL(cfg.baseURL, spec.Path, "")
		creq.Body = []byte(encoded)
		contentHeaders["Content-Type"] = "application/x-www-form-urlencoded"
		contentHeaders["Content-Length"] = strconv.Itoa(len(creq.Body))
		contentHeaders["Idempotency-Key"] = idempotencyKey(spec)
	} else {
		creq.URL = api.JoinURL(cfg.baseURL, spec.Path, encoded)
	}

	creq.Header = composeHeaders(cfg, spec, contentHeaders)
	return creq
}

// composeMultipart builds the wire request for a file upload.
func composeMultipart(cfg callConfig, spec RequestSpec, file File) (*ComposedRequest, error) {
	body, contentType, err := api.BuildMultipart(spec.Params, "file", file.Name, file.Data)
	if err != nil {
		return nil, err
	}

	creq := &ComposedRequest{
		Method: spec.Method,
		URL:    api.JoinURL(cfg.baseURL, spec.Path, ""),
		Body:   body,
	}
	creq.Header = composeHeaders(cfg, spec, map[string]string{
		"Content-Type":    contentType,
		"Content-Length":  strconv.Itoa(len(body)),
		"Idempotency-Key": idempotencyKey(spec),
	})
	return creq, nil
}

// composeHeaders assembles the full header set. Content headers sit in the
// base set; headers from spec.Headers merge after them and win.
func composeHeaders(cfg callConfig, spec RequestSpec, contentHeaders map[string]string) http.Header {
	key := spec.EphemeralKeySecret
	if key == "" {
		key = cfg.apiKey
	}

	extra := contentHeaders
	for k, v := range spec.Headers {
		extra[k] = v
	}

	return api.ComposeHeaders(api.HeaderConfig{
		Key:       key,
		UserKey:   api.IsUserKey(cfg.apiKey),
		Version:   APIVersion,
		BetaFlags: cfg.betaFlags,
		Account:   cfg.account,
		UserAgent: userAgent(cfg),
		Extra:     extra,
	})
}

// NewIdempotencyKey returns a fresh key for [RequestSpec.IdempotencyKey],
// letting a caller reuse one key across its own retry of a POST.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

func idempotencyKey(spec RequestSpec) string {
	if spec.IdempotencyKey != "" {
		return spec.IdempotencyKey
	}
	return NewIdempotencyKey()
}

// userAgent renders the X-Stripe-User-Agent JSON for one snapshot.
func userAgent(cfg callConfig) string {
	ua := api.UserAgent{
		Lang:            "go",
		BindingsVersion: Version,
	}
	if cfg.device != nil {
		info := cfg.device.DeviceInfo()
		ua.OSVersion = info.OSVersion
		ua.Type = info.Type
		ua.Model = info.Model
		ua.VendorID = info.VendorID
	}
	if cfg.appInfo != nil {
		ua.Name = cfg.appInfo.Name
		ua.PartnerID = cfg.appInfo.PartnerID
		ua.Version = cfg.appInfo.Version
		ua.URL = cfg.appInfo.URL
	}
	return ua.Encode()
}
