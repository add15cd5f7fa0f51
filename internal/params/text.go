package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// JSON cannot spell these values, so the text form stores them as
// reserved strings.
const (
	magicUndefined   = "_undef_"
	magicNaN         = "_nan_"
	magicPosInfinity = "_posinfinity_"
	magicNegInfinity = "_neginfinity_"
	magicNegZero     = "_negzero_"
)

// Parse decodes the text form of a parameter value.
//
// The text form is JSON in which the strings "_undef_", "_nan_",
// "_posinfinity_", "_neginfinity_" and "_negzero_" stand for undefined,
// NaN, +Inf, -Inf and -0 at any nesting depth.
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid param value %q: %w", text, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid param value %q: trailing data", text)
	}

	return fromJSON(raw)
}

func fromJSON(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return stringValue(val), nil
	case json.Number:
		f, err := strconv.ParseFloat(string(val), 64)
		if err != nil {
			return nil, fmt.Errorf("number out of range: %s", val)
		}
		return Number(f), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			pv, err := fromJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = pv
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			pv, err := fromJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			if err := setKey(obj, k, pv); err != nil {
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// stringValue maps the reserved strings back to the values they encode.
func stringValue(s string) Value {
	switch s {
	case magicUndefined:
		return Undefined{}
	case magicNaN:
		return Number(math.NaN())
	case magicPosInfinity:
		return Number(math.Inf(1))
	case magicNegInfinity:
		return Number(math.Inf(-1))
	case magicNegZero:
		return Number(math.Copysign(0, -1))
	}
	return String(norm.NFC.String(s))
}

// setKey stores v under the NFC form of k. Keys that differ only in
// normalization collide.
func setKey(obj Object, k string, v Value) error {
	nk := norm.NFC.String(k)
	if _, dup := obj[nk]; dup {
		return fmt.Errorf("object key %q duplicates another key after NFC normalization", k)
	}
	obj[nk] = v
	return nil
}

// Format produces the canonical text form of v.
//
// Differences from encoding/json:
//  1. Object keys sorted by UTF-16 code units
//  2. No HTML escaping, U+2028 and U+2029 are written literally
//  3. Strings are NFC normalized; invalid UTF-8 is an error rather than
//     being replaced with U+FFFD
//  4. Numbers use the shortest JavaScript spelling (1, 0.5, 1e+21, 1e-7)
//  5. Undefined, NaN, the infinities and -0 use the reserved strings
func Format(v Value) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustFormat is like Format but panics on error.
// Use only when v is known to be well formed (contains no nil values).
func MustFormat(v Value) string {
	s, err := Format(v)
	if err != nil {
		panic(err)
	}
	return s
}

func writeValue(sb *strings.Builder, v Value) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("nil value")
	case Undefined:
		writeString(sb, magicUndefined)
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(val)))
	case Number:
		writeNumber(sb, float64(val))
	case String:
		if !utf8.ValidString(string(val)) {
			return fmt.Errorf("string %q is not valid UTF-8", string(val))
		}
		writeString(sb, norm.NFC.String(string(val)))
	case Array:
		sb.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeValue(sb, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, k := range val.SortedKeys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if !utf8.ValidString(k) {
				return fmt.Errorf("object key %q is not valid UTF-8", k)
			}
			writeString(sb, norm.NFC.String(k))
			sb.WriteByte(':')
			if err := writeValue(sb, val[k]); err != nil {
				return fmt.Errorf("object[%q]: %w", k, err)
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("unknown Value type: %T", v)
	}
	return nil
}

func writeNumber(sb *strings.Builder, f float64) {
	switch {
	case math.IsNaN(f):
		writeString(sb, magicNaN)
	case math.IsInf(f, 1):
		writeString(sb, magicPosInfinity)
	case math.IsInf(f, -1):
		writeString(sb, magicNegInfinity)
	case f == 0 && math.Signbit(f):
		writeString(sb, magicNegZero)
	default:
		sb.WriteString(formatNumber(f))
	}
}

// formatNumber spells a finite number the way JavaScript's Number#toString
// does: fixed notation for 1e-6 <= |f| < 1e21, exponent notation otherwise.
func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[0]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + string(sign) + digits
}

// writeString quotes s as JSON.stringify does: only the quote, backslash
// and control characters are escaped.
func writeString(sb *strings.Builder, s string) {
	const hex = "0123456789abcdef"
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u00`)
				sb.WriteByte(hex[r>>4])
				sb.WriteByte(hex[r&0xf])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
