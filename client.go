package stripekit

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"

	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/stripekit/client-go/internal/api"
	"github.com/stripekit/client-go/logger"
	"github.com/stripekit/client-go/metrics"
)

// Client is the entry point for the payment API. It owns the configuration
// every request reads and the completion loop callbacks are delivered on.
//
// A Client is safe for concurrent use. Configuration setters may run
// concurrently with dispatched calls; each call captures a consistent
// snapshot at dispatch time, so a mutation never affects calls already in
// flight.
type Client struct {
	mu        sync.RWMutex
	apiKey    string
	account   string
	appInfo   *AppInfo
	betaFlags map[string]struct{}
	baseURL   string
	closed    bool

	transport Transport
	decoder   Decoder
	encoder   ObjectEncoder
	device    DeviceInfoProvider
	log       logger.Logger
	rec       metrics.Recorder

	loop  *api.CompletionLoop
	calls sync.WaitGroup
}

// New creates a client. A key supplied through WithAPIKey is validated
// here and panics on misuse; see [Client.SetAPIKey].
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: apiBaseURL,
		timeout: defaultTimeout,
		decoder: jsonDecoder{},
		encoder: jsonObjectEncoder{},
		device:  runtimeDeviceInfo{},
		log:     logger.NopLogger{},
		rec:     metrics.NopRecorder{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.transport == nil {
		hc := cfg.httpClient
		if hc == nil {
			hc = &http.Client{Timeout: cfg.timeout}
		}
		cfg.transport = newHTTPTransport(hc)
	}

	c := &Client{
		account:   cfg.account,
		appInfo:   cfg.appInfo,
		betaFlags: make(map[string]struct{}, len(cfg.betaFlags)),
		baseURL:   cfg.baseURL,
		transport: cfg.transport,
		decoder:   cfg.decoder,
		encoder:   cfg.encoder,
		device:    cfg.device,
		log:       cfg.log,
		rec:       cfg.rec,
	}
	for _, f := range cfg.betaFlags {
		c.betaFlags[f] = struct{}{}
	}
	if cfg.apiKeySet {
		c.SetAPIKey(cfg.apiKey)
	}

	c.loop = api.NewCompletionLoop(func(v any) {
		c.log.Error("completion callback panicked", map[string]any{"panic": v})
	})
	return c
}

// NewFromEnv builds a client from the process environment. It reads:
//
//   - STRIPE_PUBLISHABLE_KEY (required)
//   - STRIPE_ACCOUNT: optional connected account id
//   - STRIPE_HTTP_TIMEOUT: optional request timeout, e.g. "45s" or "1m"
//   - STRIPE_LOG_LEVEL: optional; any value enables zap logging at that
//     level
//
// Options apply after the environment and may override it.
func NewFromEnv(opts ...Option) (*Client, error) {
	key := os.Getenv("STRIPE_PUBLISHABLE_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	envOpts := []Option{WithAPIKey(key)}
	if account := os.Getenv("STRIPE_ACCOUNT"); account != "" {
		envOpts = append(envOpts, WithConnectedAccount(account))
	}
	if raw := os.Getenv("STRIPE_HTTP_TIMEOUT"); raw != "" {
		timeout, err := str2duration.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse STRIPE_HTTP_TIMEOUT: %w", err)
		}
		envOpts = append(envOpts, WithTimeout(timeout))
	}
	if level := os.Getenv("STRIPE_LOG_LEVEL"); level != "" {
		envOpts = append(envOpts, WithLogger(logger.NewZapLogger(level)))
	}

	return New(append(envOpts, opts...)...), nil
}

// SetAPIKey replaces the publishable key used by subsequent requests. It
// panics when the key is empty or carries the secret-key prefix; both
// indicate an integration bug, not a runtime condition. The first use of a
// test-mode key in the process logs a one-time warning.
func (c *Client) SetAPIKey(key string) {
	api.ValidateKey(key)
	if api.NoteTestKeyUse(key) {
		c.log.Warn("test-mode API key in use; live charges are disabled", map[string]any{
			"key": api.RedactKey(key),
		})
	}
	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()
}

// APIKey returns the configured publishable key, or "".
func (c *Client) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// IsTestKey reports whether the configured key is a test-mode key.
func (c *Client) IsTestKey() bool {
	return api.IsTestKey(c.APIKey())
}

// IsUserKey reports whether the configured key is user-scoped.
func (c *Client) IsUserKey() bool {
	return api.IsUserKey(c.APIKey())
}

// SetConnectedAccount routes subsequent requests through the given
// connected account. An empty id clears the routing header. Calls already
// in flight keep the account they were dispatched with.
func (c *Client) SetConnectedAccount(accountID string) {
	c.mu.Lock()
	c.account = accountID
	c.mu.Unlock()
}

// ConnectedAccount returns the connected account id, or "".
func (c *Client) ConnectedAccount() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account
}

// SetAppInfo attaches application identity to the user-agent header.
func (c *Client) SetAppInfo(info AppInfo) {
	c.mu.Lock()
	c.appInfo = &info
	c.mu.Unlock()
}

// AppInfo returns the configured application identity, or nil.
func (c *Client) AppInfo() *AppInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.appInfo == nil {
		return nil
	}
	info := *c.appInfo
	return &info
}

// AddBetaFlag enables a beta API behavior on the version header. Flags
// accumulate for the life of the client; there is no removal.
func (c *Client) AddBetaFlag(flag string) {
	c.mu.Lock()
	c.betaFlags[flag] = struct{}{}
	c.mu.Unlock()
}

// BetaFlags returns the enabled beta flags in sorted order.
func (c *Client) BetaFlags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flags := make([]string, 0, len(c.betaFlags))
	for f := range c.betaFlags {
		flags = append(flags, f)
	}
	sort.Strings(flags)
	return flags
}

// callConfig is the immutable view of configuration one request composes
// against.
type callConfig struct {
	apiKey    string
	account   string
	appInfo   *AppInfo
	betaFlags []string
	baseURL   string
	transport Transport
	decoder   Decoder
	encoder   ObjectEncoder
	device    DeviceInfoProvider
}

func (c *Client) snapshot() callConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flags := make([]string, 0, len(c.betaFlags))
	for f := range c.betaFlags {
		flags = append(flags, f)
	}
	return callConfig{
		apiKey:    c.apiKey,
		account:   c.account,
		appInfo:   c.appInfo,
		betaFlags: flags,
		baseURL:   c.baseURL,
		transport: c.transport,
		decoder:   c.decoder,
		encoder:   c.encoder,
		device:    c.device,
	}
}

// beginCall registers an in-flight call. It fails once Close has run.
func (c *Client) beginCall() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	c.calls.Add(1)
	return nil
}

// deliver schedules a completion on the loop. The task releases its call
// registration after it runs, so Close cannot return before every pending
// callback has been delivered.
func (c *Client) deliver(task func()) {
	c.loop.Enqueue(func() {
		defer c.calls.Done()
		task()
	})
}

// Close waits for in-flight calls to finish, delivers their callbacks, and
// stops the completion loop. Calls made after Close complete with
// ErrClientClosed. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.calls.Wait()
	c.loop.Close()
	return nil
}
