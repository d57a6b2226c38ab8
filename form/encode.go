package form

import (
	"net/url"
	"strings"
)

// Pair is one flattened key/value from a Values tree. Keys carry bracket
// notation; neither side is percent-escaped.
type Pair struct {
	Key   string
	Value string
}

// Flatten walks the tree in insertion order and returns the bracketed
// key/value pairs Encode would emit, before escaping. Empty arrays and
// mappings contribute nothing.
func (v *Values) Flatten() []Pair {
	if v == nil {
		return nil
	}
	var pairs []Pair
	v.flattenInto(&pairs, "")
	return pairs
}

func (v *Values) flattenInto(pairs *[]Pair, prefix string) {
	for _, p := range v.pairs {
		key := p.key
		if prefix != "" {
			key = prefix + "[" + p.key + "]"
		}
		flattenValue(pairs, key, p.val)
	}
}

func flattenValue(pairs *[]Pair, key string, val Value) {
	switch val.kind {
	case kindArray:
		for _, item := range val.arr {
			flattenValue(pairs, key+"[]", item)
		}
	case kindMap:
		if val.obj != nil {
			val.obj.flattenInto(pairs, key)
		}
	default:
		*pairs = append(*pairs, Pair{Key: key, Value: val.scalarString()})
	}
}

// Encode renders the tree as a single form-encoded string. Nested keys use
// bracket notation, pairs join with "&", and both keys and values are
// escaped per form-encoding rules. An empty or nil tree encodes to "".
func (v *Values) Encode() string {
	pairs := v.Flatten()
	if len(pairs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
