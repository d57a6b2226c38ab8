package stripekit

import "sync"

var (
	sharedMu sync.RWMutex
	shared   *Client
)

// Configure builds a client with the given publishable key and installs it
// as the process-wide shared instance returned by [Shared]. It is meant to
// be called once at startup. Calling it again replaces the shared instance;
// the previous one keeps running and should be closed by whoever still
// holds it.
func Configure(key string, opts ...Option) *Client {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithAPIKey(key))
	c := New(all...)

	sharedMu.Lock()
	shared = c
	sharedMu.Unlock()
	return c
}

// Shared returns the process-wide client. Before [Configure] has run it
// returns a client with no key configured; such a client still dispatches
// requests, authorizing them with an empty bearer token, so call Configure
// or [Client.SetAPIKey] first in anything but a test.
func Shared() *Client {
	sharedMu.RLock()
	c := shared
	sharedMu.RUnlock()
	if c != nil {
		return c
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = New()
	}
	return shared
}
