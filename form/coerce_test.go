package form

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCoerce_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "usd", "usd"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint8", uint8(255), "255"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"float64", 0.07, "0.07"},
		{"float32", float32(1.5), "1.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"json.Number", json.Number("12345678901234567890.5"), "12345678901234567890.5"},
		{"decimal", decimal.RequireFromString("10.01"), "10.01"},
		{"time", time.Unix(1700000000, 0), "1700000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok := Coerce(tt.in)
			if !ok {
				t.Fatalf("Coerce(%v) ok = false, want true", tt.in)
			}
			if got := val.scalarString(); got != tt.want {
				t.Errorf("Coerce(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoerce_Rejected(t *testing.T) {
	inputs := []any{
		func() {},
		make(chan int),
		struct{ X int }{1},
		complex(1, 2),
	}

	for _, in := range inputs {
		if _, ok := Coerce(in); ok {
			t.Errorf("Coerce(%T) ok = true, want false", in)
		}
	}
}

func TestCoerce_StringSlice(t *testing.T) {
	val, ok := Coerce([]string{"a", "b"})
	if !ok {
		t.Fatal("Coerce() ok = false, want true")
	}
	got := New().Set("tags", val).Encode()
	want := "tags%5B%5D=a&tags%5B%5D=b"
	if got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

func TestCoerce_AnySliceSkipsBadItems(t *testing.T) {
	val, ok := Coerce([]any{"keep", func() {}, 7})
	if !ok {
		t.Fatal("Coerce() ok = false, want true")
	}
	got := New().Set("items", val).Encode()
	want := "items%5B%5D=keep&items%5B%5D=7"
	if got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

func TestCoerce_StringMapSortsKeys(t *testing.T) {
	val, ok := Coerce(map[string]string{"zeta": "z", "alpha": "a", "mid": "m"})
	if !ok {
		t.Fatal("Coerce() ok = false, want true")
	}
	got := New().Set("metadata", val).Encode()
	want := "metadata%5Balpha%5D=a&metadata%5Bmid%5D=m&metadata%5Bzeta%5D=z"
	if got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

func TestCoerce_AnyMapSkipsBadValues(t *testing.T) {
	val, ok := Coerce(map[string]any{
		"amount": 500,
		"bad":    make(chan int),
		"nested": map[string]any{"deep": true},
	})
	if !ok {
		t.Fatal("Coerce() ok = false, want true")
	}
	got := New().Set("m", val).Encode()
	want := "m%5Bamount%5D=500&m%5Bnested%5D%5Bdeep%5D=true"
	if got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

func TestCoerce_PassThrough(t *testing.T) {
	orig := String("x")
	val, ok := Coerce(orig)
	if !ok || val.scalarString() != "x" {
		t.Errorf("Coerce(Value) = %v, %v, want pass-through", val, ok)
	}

	vs := New().Set("k", Int(1))
	val, ok = Coerce(vs)
	if !ok {
		t.Fatal("Coerce(*Values) ok = false, want true")
	}
	got := New().Set("outer", val).Encode()
	want := "outer%5Bk%5D=1"
	if got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}
