package stripekit

import (
	"context"
	"net/http"
	"time"

	"github.com/stripekit/client-go/form"
	"github.com/stripekit/client-go/internal/api"
)

// Get dispatches a GET to path and decodes the response as T. The callback
// runs exactly once on the client's completion loop, with either a value
// or an error, never both. Get returns immediately; there is no way to
// cancel a dispatched call.
func Get[T any](c *Client, path string, params *form.Values, fn func(*T, error)) {
	Do(c, RequestSpec{Method: http.MethodGet, Path: path, Params: params}, fn)
}

// Post dispatches a form-encoded POST to path and decodes the response as
// T. See [Get] for the callback contract.
func Post[T any](c *Client, path string, params *form.Values, fn func(*T, error)) {
	Do(c, RequestSpec{Method: http.MethodPost, Path: path, Params: params}, fn)
}

// PostObject serializes obj through the client's ObjectEncoder and POSTs
// the result to path. A serialization failure reaches the callback as an
// *EncodeError rather than failing synchronously, so every call path
// completes the same way.
func PostObject[T any](c *Client, path string, obj any, fn func(*T, error)) {
	if err := c.beginCall(); err != nil {
		failClosed(fn)
		return
	}

	cfg := c.snapshot()
	params, err := cfg.encoder.Encode(obj)
	if err != nil {
		c.rec.IncCounter("encode_error", map[string]string{"method": http.MethodPost})
		eerr := &EncodeError{Err: err}
		c.deliver(func() { fn(nil, eerr) })
		return
	}

	creq := compose(cfg, RequestSpec{Method: http.MethodPost, Path: path, Params: params})
	c.logDispatch(cfg, creq)
	sendAndDecode(c, cfg, creq, fn)
}

// Do dispatches spec and decodes the response as T. It is the generic
// entry point behind [Get] and [Post], for calls that need an ephemeral
// key, extra headers, or a pinned idempotency key.
func Do[T any](c *Client, spec RequestSpec, fn func(*T, error)) {
	if err := c.beginCall(); err != nil {
		failClosed(fn)
		return
	}
	if spec.Method != http.MethodGet && spec.Method != http.MethodPost {
		c.deliver(func() { fn(nil, ErrUnsupportedMethod) })
		return
	}

	cfg := c.snapshot()
	creq := compose(cfg, spec)
	c.logDispatch(cfg, creq)
	sendAndDecode(c, cfg, creq, fn)
}

// UploadFile POSTs file plus params to path as multipart/form-data and
// decodes the response as T. The file travels in the form's "file" part;
// params usually carry its purpose.
func UploadFile[T any](c *Client, path string, file File, params *form.Values, fn func(*T, error)) {
	if err := c.beginCall(); err != nil {
		failClosed(fn)
		return
	}

	cfg := c.snapshot()
	creq, err := composeMultipart(cfg, RequestSpec{Method: http.MethodPost, Path: path, Params: params}, file)
	if err != nil {
		c.rec.IncCounter("encode_error", map[string]string{"method": http.MethodPost})
		eerr := &EncodeError{Err: err}
		c.deliver(func() { fn(nil, eerr) })
		return
	}
	c.logDispatch(cfg, creq)
	sendAndDecode(c, cfg, creq, fn)
}

// failClosed completes a call against a closed client. The completion loop
// may already be stopped, so the callback runs on its own goroutine.
func failClosed[T any](fn func(*T, error)) {
	go fn(nil, ErrClientClosed)
}

func (c *Client) logDispatch(cfg callConfig, creq *ComposedRequest) {
	c.log.Debug("dispatching request", map[string]any{
		"method": creq.Method,
		"url":    creq.URL,
		"key":    api.RedactKey(cfg.apiKey),
	})
}

// sendAndDecode runs the transport and decode stages on a worker goroutine
// and schedules the callback on the completion loop.
func sendAndDecode[T any](c *Client, cfg callConfig, creq *ComposedRequest, fn func(*T, error)) {
	go func() {
		labels := map[string]string{"method": creq.Method}

		start := time.Now()
		raw, err := cfg.transport.Send(context.Background(), creq)
		c.rec.ObserveLatency("request", time.Since(start), labels)

		if err != nil {
			c.rec.IncCounter("transport_error", labels)
			c.log.Warn("request failed in transport", map[string]any{
				"method": creq.Method,
				"url":    creq.URL,
				"error":  err.Error(),
			})
			terr := &TransportError{Err: err, URL: creq.URL}
			c.deliver(func() { fn(nil, terr) })
			return
		}

		requestID := raw.RequestID()

		failAPI := func(apiErr *APIError) {
			c.rec.IncCounter("api_error", labels)
			c.log.Warn("request completed with API error", map[string]any{
				"method":     creq.Method,
				"url":        creq.URL,
				"status":     raw.StatusCode,
				"code":       apiErr.Code,
				"request_id": requestID,
			})
			c.deliver(func() { fn(nil, apiErr) })
		}

		// An error status resolves before the typed decode, whatever the
		// target shape. A structured envelope populates the error; any
		// other error body travels verbatim in the message.
		if raw.StatusCode >= 400 {
			if detail, ok := api.ParseEnvelope(raw.Body); ok {
				failAPI(apiErrorFromEnvelope(detail, raw.StatusCode, requestID))
				return
			}
			failAPI(&APIError{
				StatusCode: raw.StatusCode,
				Message:    string(raw.Body),
				RequestID:  requestID,
			})
			return
		}

		result := new(T)
		if derr := cfg.decoder.Decode(raw.Body, result); derr != nil {
			// A success status carrying an error envelope still reports
			// as an API error.
			if detail, ok := api.ParseEnvelope(raw.Body); ok {
				failAPI(apiErrorFromEnvelope(detail, raw.StatusCode, requestID))
				return
			}

			c.rec.IncCounter("decode_error", labels)
			c.log.Warn("response did not match expected shape", map[string]any{
				"method":     creq.Method,
				"url":        creq.URL,
				"status":     raw.StatusCode,
				"request_id": requestID,
			})
			dcErr := &DecodeError{Err: derr, StatusCode: raw.StatusCode, RequestID: requestID}
			c.deliver(func() { fn(nil, dcErr) })
			return
		}

		c.rec.IncCounter("success", labels)
		c.log.Debug("request completed", map[string]any{
			"method":     creq.Method,
			"url":        creq.URL,
			"status":     raw.StatusCode,
			"request_id": requestID,
		})
		c.deliver(func() { fn(result, nil) })
	}()
}
