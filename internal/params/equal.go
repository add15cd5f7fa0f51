package params

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// EqualFunc decides whether two parameter values are the same value.
type EqualFunc func(a, b Value) bool

// Equal reports deep structural equality of a and b.
//
// Numbers compare like JavaScript's Object.is: +0 and -0 are different
// values and NaN equals NaN. Tests that distinguish signed zero must stay
// distinguishable by query, so the usual numeric equality is not used.
//
// Strings and object keys compare in NFC, the form Format writes, so two
// values are Equal exactly when their text forms match.
//
// A nil Value equals only another nil Value.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Undefined:
		_, ok := b.(Undefined)
		return ok
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && sameNumber(float64(x), float64(y))
	case String:
		y, ok := b.(String)
		return ok && (x == y || norm.NFC.String(string(x)) == norm.NFC.String(string(y)))
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		if !ok {
			return false
		}
		x, y = nfcKeys(x), nfcKeys(y)
		if len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}

// NumericEqual is Equal with IEEE-754 number comparison: +0 equals -0 and
// NaN equals nothing. It exists for callers that deliberately want to merge
// signed zeros.
func NumericEqual(a, b Value) bool {
	x, xok := a.(Number)
	y, yok := b.(Number)
	if xok && yok {
		return x == y
	}
	switch av := a.(type) {
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !NumericEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok {
			return false
		}
		av, bv = nfcKeys(av), nfcKeys(bv)
		if len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !NumericEqual(v, w) {
				return false
			}
		}
		return true
	}
	return Equal(a, b)
}

func sameNumber(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return x == y && math.Signbit(x) == math.Signbit(y)
}

// nfcKeys returns obj keyed by the NFC form of its keys.
func nfcKeys(obj Object) Object {
	for k := range obj {
		if norm.NFC.IsNormalString(k) {
			continue
		}
		out := make(Object, len(obj))
		for k, v := range obj {
			out[norm.NFC.String(k)] = v
		}
		return out
	}
	return obj
}
