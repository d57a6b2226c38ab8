package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

// HeaderConfig carries everything header composition depends on. The facade
// assembles one per request from its configuration snapshot, so a
// concurrent configuration change cannot tear a header set mid-build.
type HeaderConfig struct {
	// Key is the resolved bearer secret: the ephemeral override when one
	// was supplied, else the configured publishable key, else empty.
	Key string
	// UserKey marks a user-scoped key, which adds the Stripe-Livemode
	// header.
	UserKey bool
	// Version is the pinned API version date.
	Version string
	// BetaFlags append to the version header. Order is not significant.
	BetaFlags []string
	// Account is the connected account id, omitted when empty.
	Account string
	// UserAgent is the pre-encoded X-Stripe-User-Agent JSON value.
	UserAgent string
	// Extra headers merge last and overwrite anything above on conflict.
	Extra map[string]string
}

// ComposeHeaders builds the header set for one request. Identical configs
// produce identical output.
func ComposeHeaders(cfg HeaderConfig) http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+cfg.Key)
	h.Set("Stripe-Version", VersionHeader(cfg.Version, cfg.BetaFlags))
	if cfg.Account != "" {
		h.Set("Stripe-Account", cfg.Account)
	}
	if cfg.UserAgent != "" {
		h.Set("X-Stripe-User-Agent", cfg.UserAgent)
	}
	if cfg.UserKey {
		h.Set("Stripe-Livemode", LivemodeValue())
	}
	for k, v := range cfg.Extra {
		h.Set(k, v)
	}
	return h
}

// VersionHeader joins the pinned version with any beta flags. Flags render
// in sorted order so the same set always produces the same string; callers
// must treat the suffix as a set.
func VersionHeader(version string, flags []string) string {
	if len(flags) == 0 {
		return version
	}
	sorted := make([]string, len(flags))
	copy(sorted, flags)
	sort.Strings(sorted)
	return version + "; " + strings.Join(sorted, "; ")
}

// UserAgent is the JSON payload carried in the X-Stripe-User-Agent header.
// Optional fields are dropped when the platform provider has nothing for
// them. Field order is fixed by the struct, keeping the encoding stable.
type UserAgent struct {
	Lang            string `json:"lang"`
	BindingsVersion string `json:"bindings_version"`
	OSVersion       string `json:"os_version,omitempty"`
	Type            string `json:"type,omitempty"`
	Model           string `json:"model,omitempty"`
	VendorID        string `json:"vendor_identifier,omitempty"`
	Name            string `json:"name,omitempty"`
	PartnerID       string `json:"partner_id,omitempty"`
	Version         string `json:"version,omitempty"`
	URL             string `json:"url,omitempty"`
}

// Encode renders the header value.
func (ua UserAgent) Encode() string {
	data, err := json.Marshal(ua)
	if err != nil {
		return ""
	}
	return string(data)
}
