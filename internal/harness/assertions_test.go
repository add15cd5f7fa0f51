package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/tree"
)

var Q = query.MustParse

func TestAssertOrdering(t *testing.T) {
	assert.NoError(t, assertOrdering(Assertion{A: "s:a:*", B: "s:a:t:*", Expect: "StrictSuperset"}))
	assert.NoError(t, assertOrdering(Assertion{A: "s:a:t:x=1", B: "s:b:t:x=1", Expect: "Unordered"}))

	err := assertOrdering(Assertion{A: "s:a:*", B: "s:a:*", Expect: "StrictSubset"})
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertOrdering, ae.Type)
	assert.Equal(t, compare.StrictSubset, ae.Expected)
	assert.Equal(t, compare.Equal, ae.Actual)
}

func TestAssertOrdering_BadQuery(t *testing.T) {
	err := assertOrdering(Assertion{A: "s", B: "s:*", Expect: "Equal"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering: a:")
}

func TestAssertSelects(t *testing.T) {
	cases := []query.Query{
		Q("s:a:t:x=1"),
		Q("s:a:t:x=2"),
		Q("s:b:t:"),
	}

	assert.NoError(t, assertSelects(context.Background(), cases, Assertion{
		Filters: []string{"s:a:t:x=2;*", "s:b:*"},
		Cases:   []string{"s:a:t:x=2", "s:b:t:"},
	}))
	assert.NoError(t, assertSelects(context.Background(), cases, Assertion{
		Filters: []string{"s:c:*"},
	}))

	err := assertSelects(context.Background(), cases, Assertion{
		Filters: []string{"s:a:*"},
		Cases:   []string{"s:a:t:x=1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selected by s:a:*")
}

func TestAssertOverlapCount(t *testing.T) {
	qs := []query.Query{Q("s:*"), Q("s:a:*"), Q("s:b:*")}

	assert.NoError(t, assertOverlapCount(qs, Assertion{Count: 2}))

	err := assertOverlapCount(qs, Assertion{Count: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s:* StrictSuperset s:a:*")
}

func TestAssertTreeParent(t *testing.T) {
	tr := tree.New(Q("s:*"), Q("s:a:*"), Q("s:a:t:x=1"))

	assert.NoError(t, assertTreeParent(tr, Assertion{Child: "s:a:t:x=1", Parent: "s:a:*"}))
	assert.NoError(t, assertTreeParent(tr, Assertion{Child: "s:a:*", Parent: "s:*"}))
	assert.NoError(t, assertTreeParent(tr, Assertion{Child: "s:*"}))

	err := assertTreeParent(tr, Assertion{Child: "s:a:t:x=1", Parent: "s:*"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected: s:*")
	assert.Contains(t, err.Error(), "actual:   s:a:*")
}

func TestAssertionError_ErrorFormat(t *testing.T) {
	err := &AssertionError{Type: AssertOverlapCount, Message: "mismatch", Expected: 1, Actual: 2}
	assert.Equal(t, "overlap_count: mismatch\n  expected: 1\n  actual:   2", err.Error())

	err = &AssertionError{Type: AssertTreeParent, Message: "missing"}
	assert.Equal(t, "tree_parent: missing", err.Error())
}
