package stripekit

// Version is the release of this binding, advertised in the
// X-Stripe-User-Agent header.
const Version = "0.3.0"

// APIVersion is the pinned API version sent as Stripe-Version on every
// request. Beta flags append to it; the date itself never varies per call.
const APIVersion = "2020-08-27"
