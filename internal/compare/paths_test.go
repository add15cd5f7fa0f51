package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want Ordering
	}{
		{"empty vs empty", nil, nil, Equal},
		{"empty vs non-empty", nil, []string{"a"}, StrictSuperset},
		{"non-empty vs empty", []string{"a"}, []string{}, StrictSubset},
		{"equal", []string{"a", "b"}, []string{"a", "b"}, Equal},
		{"prefix", []string{"a"}, []string{"a", "b"}, StrictSuperset},
		{"extension", []string{"a", "b"}, []string{"a"}, StrictSubset},
		{"differ same length", []string{"a"}, []string{"b"}, Unordered},
		{"differ at start, longer", []string{"x", "b"}, []string{"a", "b", "c"}, Unordered},
		{"differ in the middle", []string{"a", "x", "c"}, []string{"a", "b", "c"}, Unordered},
		{"segment is not a string prefix", []string{"ab"}, []string{"a", "b"}, Unordered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paths(tt.a, tt.b))
			assert.Equal(t, tt.want.Reverse(), Paths(tt.b, tt.a))
		})
	}
}
