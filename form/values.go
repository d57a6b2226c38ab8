package form

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindString
	kindInt
	kindFloat
	kindBool
	kindDecimal
	kindTime
	kindArray
	kindMap
)

// Value is a single node in a parameter tree: a scalar, an array of values,
// or a nested mapping. The zero Value encodes as an empty string.
type Value struct {
	kind kind
	str  string
	num  int64
	flt  float64
	b    bool
	dec  decimal.Decimal
	ts   time.Time
	arr  []Value
	obj  *Values
}

// String returns a string scalar.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Int returns an integer scalar.
func Int(i int64) Value { return Value{kind: kindInt, num: i} }

// Float returns a floating-point scalar.
func Float(f float64) Value { return Value{kind: kindFloat, flt: f} }

// Bool returns a boolean scalar, encoded as "true" or "false".
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Decimal returns an exact decimal scalar, encoded with decimal.String.
func Decimal(d decimal.Decimal) Value { return Value{kind: kindDecimal, dec: d} }

// Time returns a timestamp scalar, encoded as Unix seconds.
func Time(t time.Time) Value { return Value{kind: kindTime, ts: t} }

// Array returns an array node. Elements encode under the parent key with an
// empty bracket suffix (key[]=...).
func Array(items ...Value) Value { return Value{kind: kindArray, arr: items} }

// Map returns a nested mapping node. Child keys encode inside brackets
// (key[child]=...). A nil Values encodes nothing.
func Map(v *Values) Value { return Value{kind: kindMap, obj: v} }

// scalarString returns the wire form of a scalar value.
func (v Value) scalarString() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindDecimal:
		return v.dec.String()
	case kindTime:
		return strconv.FormatInt(v.ts.Unix(), 10)
	default:
		return ""
	}
}

// Values is an ordered mapping of parameter names to values. Insertion order
// is preserved, so encoding the same build sequence always yields the same
// string. The zero value is not usable; call New.
type Values struct {
	pairs []pair
}

type pair struct {
	key string
	val Value
}

// New returns an empty parameter mapping.
func New() *Values {
	return &Values{}
}

// Set assigns val to key, replacing an existing entry in place so the
// original position is kept. It returns v for chaining.
func (v *Values) Set(key string, val Value) *Values {
	for i := range v.pairs {
		if v.pairs[i].key == key {
			v.pairs[i].val = val
			return v
		}
	}
	v.pairs = append(v.pairs, pair{key: key, val: val})
	return v
}

// Add appends val to the array held at key, creating the entry when the
// key is new. Entries built with Add encode in the repeated-parameter wire
// form (key[]=...). A scalar stored earlier under the same key folds into
// the array. It returns v for chaining.
func (v *Values) Add(key string, val Value) *Values {
	for i := range v.pairs {
		if v.pairs[i].key != key {
			continue
		}
		if v.pairs[i].val.kind == kindArray {
			v.pairs[i].val.arr = append(v.pairs[i].val.arr, val)
		} else {
			v.pairs[i].val = Array(v.pairs[i].val, val)
		}
		return v
	}
	v.pairs = append(v.pairs, pair{key: key, val: Array(val)})
	return v
}

// Get returns the value stored under key.
func (v *Values) Get(key string) (Value, bool) {
	for _, p := range v.pairs {
		if p.key == key {
			return p.val, true
		}
	}
	return Value{}, false
}

// Len returns the number of entries.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.pairs)
}

// Keys returns the entry keys in insertion order.
func (v *Values) Keys() []string {
	keys := make([]string, 0, len(v.pairs))
	for _, p := range v.pairs {
		keys = append(keys, p.key)
	}
	return keys
}
