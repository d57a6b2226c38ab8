//go:build integration

package integration

import (
	"os"
	"strings"
	"testing"

	stripekit "github.com/stripekit/client-go"
	"github.com/stripekit/client-go/form"
)

// TestLive_CreateCardToken tokenizes a standard test card against the real
// API. It needs a test-mode publishable key in the environment and is the
// only test here that leaves the machine.
func TestLive_CreateCardToken(t *testing.T) {
	key := os.Getenv("STRIPE_PUBLISHABLE_KEY")
	if key == "" {
		t.Skip("STRIPE_PUBLISHABLE_KEY not set; skipping live API test")
	}
	if !strings.HasPrefix(strings.ToLower(key), "pk_test") {
		t.Skip("live test refuses non test-mode keys")
	}

	client := stripekit.New(
		stripekit.WithAPIKey(key),
		stripekit.WithAppInfo(stripekit.AppInfo{Name: "stripekit-integration", Version: stripekit.Version}),
	)
	t.Cleanup(func() { client.Close() })

	params := form.New().
		Set("card", form.Map(form.New().
			Set("number", form.String("4242424242424242")).
			Set("exp_month", form.Int(12)).
			Set("exp_year", form.Int(2030)).
			Set("cvc", form.String("123"))))

	tok, err := wait(t, func(fn func(*tokenResource, error)) {
		stripekit.Post(client, "/tokens", params, fn)
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	if !strings.HasPrefix(tok.ID, "tok_") {
		t.Errorf("token id = %s, want a tok_ prefix", tok.ID)
	}
	if tok.Livemode {
		t.Error("livemode token minted from a test-mode key")
	}
}
