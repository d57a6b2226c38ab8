package stripekit

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/stripekit/client-go/form"
	"github.com/stripekit/client-go/internal/api"
)

// Decoder turns response bytes into a typed value. Implementations must
// fail on payloads that do not match the target shape; the pipeline relies
// on that failure to fall back to error-envelope parsing.
type Decoder interface {
	Decode(data []byte, v any) error
}

// jsonDecoder is the default Decoder: strict on required fields, lenient
// on extras.
type jsonDecoder struct{}

func (jsonDecoder) Decode(data []byte, v any) error {
	return api.Decode(data, v)
}

// ObjectEncoder turns a typed object into its parameter tree for a POST
// body.
type ObjectEncoder interface {
	Encode(obj any) (*form.Values, error)
}

// jsonObjectEncoder is the default ObjectEncoder. It round-trips the
// object through JSON and coerces the resulting field mapping, so anything
// with json tags posts without a hand-built tree.
type jsonObjectEncoder struct{}

func (jsonObjectEncoder) Encode(obj any) (*form.Values, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}

	// Sorted keys keep the encoded body stable across calls.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := form.New()
	for _, k := range keys {
		if val, ok := form.Coerce(fields[k]); ok {
			values.Set(k, val)
		}
	}
	return values, nil
}
