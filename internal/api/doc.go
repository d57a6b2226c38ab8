// Package api implements the wire-level mechanics behind the stripekit
// client: key classification, header composition, request body assembly,
// lenient response decoding, and the completion loop that serializes
// callbacks.
//
// # Header Composition
//
// [ComposeHeaders] produces the full header set for a request from a
// [HeaderConfig]. The output is deterministic for a given config: the
// Authorization bearer token, the pinned Stripe-Version (with any beta
// flags appended in sorted order), the optional Stripe-Account route, the
// JSON X-Stripe-User-Agent value, and Stripe-Livemode for user-scoped
// keys. Caller-supplied extras are merged last and win on conflict.
//
// # Decoding
//
// [Decode] unmarshals JSON and then rejects payloads whose required fields
// are absent, so that an error envelope cannot silently satisfy a typed
// result shape. [ParseEnvelope] recognizes the server's structured error
// payload.
//
// # Completion Loop
//
// [CompletionLoop] is a single goroutine draining a task queue. Every
// request completion is enqueued onto it, which gives callers the
// guarantee that their callbacks never run concurrently with one another.
package api
