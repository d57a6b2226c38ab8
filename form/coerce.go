package form

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Coerce converts an arbitrary Go value into a tree Value. It accepts the
// JSON-shaped types produced by decoding (string, bool, json.Number, float64,
// []any, map[string]any, nil) plus the native scalar types the constructors
// cover. Keys of coerced maps are sorted so the result encodes stably.
//
// Values outside that domain (funcs, channels, structs, ...) report ok=false;
// callers skip them rather than failing, so malformed input degrades to an
// incomplete parameter set instead of an error.
func Coerce(v any) (Value, bool) {
	switch x := v.(type) {
	case nil:
		return String(""), true
	case Value:
		return x, true
	case *Values:
		return Map(x), true
	case string:
		return String(x), true
	case bool:
		return Bool(x), true
	case int:
		return Int(int64(x)), true
	case int8:
		return Int(int64(x)), true
	case int16:
		return Int(int64(x)), true
	case int32:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case uint:
		return String(strconv.FormatUint(uint64(x), 10)), true
	case uint8:
		return Int(int64(x)), true
	case uint16:
		return Int(int64(x)), true
	case uint32:
		return Int(int64(x)), true
	case uint64:
		return String(strconv.FormatUint(x, 10)), true
	case float32:
		return Float(float64(x)), true
	case float64:
		return Float(x), true
	case json.Number:
		// Already a wire-ready literal; keep it verbatim.
		return String(x.String()), true
	case decimal.Decimal:
		return Decimal(x), true
	case time.Time:
		return Time(x), true
	case []string:
		items := make([]Value, 0, len(x))
		for _, s := range x {
			items = append(items, String(s))
		}
		return Array(items...), true
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			if cv, ok := Coerce(item); ok {
				items = append(items, cv)
			}
		}
		return Array(items...), true
	case map[string]string:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		nested := New()
		for _, k := range keys {
			nested.Set(k, String(x[k]))
		}
		return Map(nested), true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		nested := New()
		for _, k := range keys {
			if cv, ok := Coerce(x[k]); ok {
				nested.Set(k, cv)
			}
		}
		return Map(nested), true
	}
	return Value{}, false
}
