package stripekit

import (
	"net/http"
	"time"

	"github.com/stripekit/client-go/logger"
	"github.com/stripekit/client-go/metrics"
)

// apiBaseURL is the fixed API origin. There is no public override; tests
// redirect through the unexported withBaseURL option.
const apiBaseURL = "https://api.stripe.com/v1"

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey    string
	apiKeySet bool
	account   string
	appInfo   *AppInfo
	betaFlags []string
	baseURL   string

	httpClient *http.Client
	timeout    time.Duration
	transport  Transport
	decoder    Decoder
	encoder    ObjectEncoder
	device     DeviceInfoProvider
	log        logger.Logger
	rec        metrics.Recorder
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the publishable key. The key is validated when the
// client is built, with the same panic behavior as [Client.SetAPIKey].
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
		c.apiKeySet = true
	}
}

// WithConnectedAccount routes requests through a connected account.
func WithConnectedAccount(accountID string) Option {
	return func(c *clientConfig) {
		c.account = accountID
	}
}

// WithAppInfo identifies the calling application in the user-agent header.
func WithAppInfo(info AppInfo) Option {
	return func(c *clientConfig) {
		c.appInfo = &info
	}
}

// WithBetaFlags enables beta API behaviors on the version header.
func WithBetaFlags(flags ...string) Option {
	return func(c *clientConfig) {
		c.betaFlags = append(c.betaFlags, flags...)
	}
}

// WithTransport replaces the HTTP transport. WithHTTPClient and
// WithTimeout are ignored when a transport is supplied.
func WithTransport(t Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithHTTPClient keeps the default transport but backs it with a custom
// HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default transport's per-request timeout.
// Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithDecoder replaces the response decoder.
func WithDecoder(d Decoder) Option {
	return func(c *clientConfig) {
		c.decoder = d
	}
}

// WithObjectEncoder replaces the typed-object serializer used by
// [PostObject].
func WithObjectEncoder(e ObjectEncoder) Option {
	return func(c *clientConfig) {
		c.encoder = e
	}
}

// WithDeviceInfoProvider replaces the platform metadata source for the
// user-agent header.
func WithDeviceInfoProvider(p DeviceInfoProvider) Option {
	return func(c *clientConfig) {
		c.device = p
	}
}

// WithLogger sets the diagnostic logger. Default: discard.
func WithLogger(l logger.Logger) Option {
	return func(c *clientConfig) {
		c.log = l
	}
}

// WithMetrics sets the metrics recorder. Default: discard.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *clientConfig) {
		c.rec = r
	}
}

// withBaseURL redirects requests to a test server.
func withBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}
