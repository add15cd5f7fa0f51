package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/query"
)

func TestOverlaps(t *testing.T) {
	queries := []query.Query{
		q(`s:a,*`),
		q(`s:a:t:x=1;*`),
		q(`s:a:t:y=2;*`),
		q(`s:b:t:`),
		q(`s:a:t:_seed=1;x=1;*`),
	}

	got := Overlaps(queries)
	require.Len(t, got, 4)

	want := []string{
		`s:a,* StrictSuperset s:a:t:x=1;*`,
		`s:a,* StrictSuperset s:a:t:y=2;*`,
		`s:a,* StrictSuperset s:a:t:x=1;*`,
		`s:a:t:x=1;* Equal s:a:t:x=1;*`,
	}
	var strs []string
	for _, o := range got {
		strs = append(strs, o.String())
	}
	assert.Equal(t, want, strs)
}

func TestOverlaps_Subset(t *testing.T) {
	got := Overlaps([]query.Query{q(`s:a:t:x=1`), q(`s:a:*`)})

	require.Len(t, got, 1)
	assert.Equal(t, compare.StrictSubset, got[0].Ordering)
}

func TestOverlaps_None(t *testing.T) {
	assert.Empty(t, Overlaps([]query.Query{q(`s:a:*`), q(`s:b:*`), q(`t:a:*`)}))
	assert.Empty(t, Overlaps(nil))
}
