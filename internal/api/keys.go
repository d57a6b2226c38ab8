package api

import (
	"os"
	"strings"
	"sync/atomic"
)

// Key prefixes recognized by the client. Secret keys are server-side
// credentials and must never reach a client binding.
const (
	secretKeyPrefix   = "sk_"
	testKeyPrefix     = "pk_test"
	userKeyPrefix     = "uk_"
	userTestKeyPrefix = "uk_test"
)

// testKeyWarned is process-wide and set at most once. A race between two
// first uses can at worst repeat the warning.
var testKeyWarned atomic.Bool

// ValidateKey panics when key is empty or carries the secret-key prefix.
// A bad key is an integration bug, not a runtime condition, so it fails
// loudly instead of returning an error.
func ValidateKey(key string) {
	if key == "" {
		panic("stripekit: empty API key; set a publishable key before making requests")
	}
	if strings.HasPrefix(key, secretKeyPrefix) {
		panic("stripekit: secret key used in a client binding; use a publishable key instead")
	}
}

// IsTestKey reports whether key is a test-mode key. The prefix match is
// case-insensitive to mirror server-side handling.
func IsTestKey(key string) bool {
	k := strings.ToLower(key)
	return strings.HasPrefix(k, testKeyPrefix) || strings.HasPrefix(k, userTestKeyPrefix)
}

// IsUserKey reports whether key is user-scoped. User keys add the
// Stripe-Livemode header downstream.
func IsUserKey(key string) bool {
	return strings.HasPrefix(key, userKeyPrefix)
}

// NoteTestKeyUse records the first use of a test-mode key in this process
// and reports true exactly once, so the caller can emit a single warning.
// Setting STRIPEKIT_DEBUG suppresses the warning during development.
func NoteTestKeyUse(key string) bool {
	if !IsTestKey(key) {
		return false
	}
	if os.Getenv("STRIPEKIT_DEBUG") != "" {
		return false
	}
	return testKeyWarned.CompareAndSwap(false, true)
}

// RedactKey shortens key for log output.
func RedactKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8] + "..."
}

// LivemodeValue resolves the Stripe-Livemode header value from the process
// environment. Only an explicit "false" opts into test mode.
func LivemodeValue() string {
	if os.Getenv("STRIPE_LIVEMODE") == "false" {
		return "false"
	}
	return "true"
}
