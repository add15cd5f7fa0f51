package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var negZero = Number(math.Copysign(0, -1))

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"undefined", Undefined{}, Undefined{}, true},
		{"null", Null{}, Null{}, true},
		{"undefined vs null", Undefined{}, Null{}, false},
		{"bool", Bool(true), Bool(true), true},
		{"bool differs", Bool(true), Bool(false), false},
		{"number", Number(1.5), Number(1.5), true},
		{"number differs", Number(1), Number(2), false},
		{"positive vs negative zero", Number(0), negZero, false},
		{"negative zero", negZero, negZero, true},
		{"nan", Number(math.NaN()), Number(math.NaN()), true},
		{"nan vs number", Number(math.NaN()), Number(0), false},
		{"infinity", Number(math.Inf(1)), Number(math.Inf(1)), true},
		{"string", String("a"), String("a"), true},
		{"string vs number", String("1"), Number(1), false},
		{"array", Array{Number(1), String("x")}, Array{Number(1), String("x")}, true},
		{"array length", Array{Number(1)}, Array{Number(1), Number(1)}, false},
		{"array nested zero", Array{Number(0)}, Array{negZero}, false},
		{"object", Object{"a": Number(1)}, Object{"a": Number(1)}, true},
		{"object key differs", Object{"a": Number(1)}, Object{"b": Number(1)}, false},
		{"string nfc vs nfd", String("\u00e9"), String("e\u0301"), true},
		{"string different letters", String("\u00e9"), String("e"), false},
		{"object key nfc vs nfd", Object{"\u00e9": Number(1)}, Object{"e\u0301": Number(1)}, true},
		{"object nested zero", Object{"a": Object{"b": Number(0)}}, Object{"a": Object{"b": negZero}}, false},
		{"nil", nil, nil, true},
		{"nil vs value", nil, Null{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestNumericEqual(t *testing.T) {
	assert.True(t, NumericEqual(Number(0), negZero))
	assert.True(t, NumericEqual(Array{Number(0)}, Array{negZero}))
	assert.True(t, NumericEqual(Object{"a": Number(0)}, Object{"a": negZero}))
	assert.False(t, NumericEqual(Number(math.NaN()), Number(math.NaN())))
	assert.True(t, NumericEqual(String("a"), String("a")))
	assert.True(t, NumericEqual(Object{"e\u0301": Number(0)}, Object{"\u00e9": negZero}))
}
