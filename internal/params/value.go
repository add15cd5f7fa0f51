package params

import (
	"slices"
	"strings"
	"unicode/utf16"
)

// PrivatePrefix marks parameter keys that are excluded from query text and
// from comparison.
const PrivatePrefix = "_"

// Value is a sealed interface representing a parameter value.
// Only Undefined, Null, Bool, Number, String, Array and Object implement it.
type Value interface {
	paramValue() // Sealed - only these types implement it
}

// Undefined is the value of a parameter that was declared without a value.
type Undefined struct{}

func (Undefined) paramValue() {}

// Null represents a JSON null.
type Null struct{}

func (Null) paramValue() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) paramValue() {}

// Number represents a numeric value.
// Signed zero, NaN and the infinities are all representable.
type Number float64

func (Number) paramValue() {}

// String represents a string value.
type String string

func (String) paramValue() {}

// Array represents an ordered list of values.
type Array []Value

func (Array) paramValue() {}

// Object represents a nested map of values.
// Use SortedKeys() for deterministic iteration.
type Object map[string]Value

func (Object) paramValue() {}

// SortedKeys returns keys in RFC 8785 order (UTF-16 code units).
func (obj Object) SortedKeys() []string {
	return sortedKeys(obj)
}

// Params is the set of named parameters of a test case.
type Params map[string]Value

// KeyIsPublic reports whether k takes part in query text and comparison.
func KeyIsPublic(k string) bool {
	return !strings.HasPrefix(k, PrivatePrefix)
}

// PublicKeys returns the public keys of p in RFC 8785 order.
func (p Params) PublicKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if KeyIsPublic(k) {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// Public returns a copy of p holding only the public keys.
func (p Params) Public() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if KeyIsPublic(k) {
			out[k] = v
		}
	}
	return out
}

// Clone returns a shallow copy of p. Values are immutable and shared.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings by UTF-16 code units, as RFC 8785
// requires. Go's native string order is by UTF-8 bytes, which differs for
// characters outside the BMP.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}
