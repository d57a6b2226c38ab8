package stripekit

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// defaultTimeout bounds each request made by the built-in transport.
const defaultTimeout = 30 * time.Second

// Transport sends a composed request and reports the raw response. Errors
// are transport-level only; an HTTP error status is data, not an error.
// Implementations must be safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, req *ComposedRequest) (*RawResponse, error)
}

// httpTransport is the default Transport, backed by net/http.
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(client *http.Client) *httpTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &httpTransport{client: client}
}

func (t *httpTransport) Send(ctx context.Context, req *ComposedRequest) (*RawResponse, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = req.Header.Clone()
	httpReq.ContentLength = int64(len(req.Body))

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
