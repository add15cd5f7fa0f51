package harness

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/selection"
	"github.com/roach88/ctsq/internal/tree"
)

// AssertionError provides detailed context for assertion failures.
type AssertionError struct {
	Type     string
	Message  string
	Expected any
	Actual   any
}

func (e *AssertionError) Error() string {
	if e.Expected != nil || e.Actual != nil {
		return fmt.Sprintf("%s: %s\n  expected: %v\n  actual:   %v", e.Type, e.Message, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func assertOrdering(a Assertion) error {
	qa, err := query.Parse(a.A)
	if err != nil {
		return &AssertionError{Type: AssertOrdering, Message: fmt.Sprintf("a: %v", err)}
	}
	qb, err := query.Parse(a.B)
	if err != nil {
		return &AssertionError{Type: AssertOrdering, Message: fmt.Sprintf("b: %v", err)}
	}

	want, ok := parseOrdering(a.Expect)
	if !ok {
		return &AssertionError{Type: AssertOrdering, Message: fmt.Sprintf("unknown ordering %q", a.Expect)}
	}

	if got := compare.Queries(qa, qb); got != want {
		return &AssertionError{
			Type:     AssertOrdering,
			Message:  fmt.Sprintf("compare(%s, %s)", qa, qb),
			Expected: want,
			Actual:   got,
		}
	}
	return nil
}

func assertSelects(ctx context.Context, cases []query.Query, a Assertion) error {
	filters := make([]query.Query, 0, len(a.Filters))
	for _, raw := range a.Filters {
		f, err := query.Parse(raw)
		if err != nil {
			return &AssertionError{Type: AssertSelects, Message: fmt.Sprintf("filter %q: %v", raw, err)}
		}
		filters = append(filters, f)
	}

	selected, err := selection.Select(ctx, filters, cases, selection.Options{})
	if err != nil {
		return &AssertionError{Type: AssertSelects, Message: err.Error()}
	}

	got := make([]string, len(selected))
	for i, q := range selected {
		got[i] = q.String()
	}
	want := a.Cases
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(got, want) {
		return &AssertionError{
			Type:     AssertSelects,
			Message:  fmt.Sprintf("selected by %s", strings.Join(a.Filters, ", ")),
			Expected: want,
			Actual:   got,
		}
	}
	return nil
}

func assertOverlapCount(queries []query.Query, a Assertion) error {
	overlaps := selection.Overlaps(queries)
	if len(overlaps) != a.Count {
		pairs := make([]string, len(overlaps))
		for i, o := range overlaps {
			pairs[i] = o.String()
		}
		return &AssertionError{
			Type:     AssertOverlapCount,
			Message:  fmt.Sprintf("expected %d overlapping pair(s), got %d: %v", a.Count, len(overlaps), pairs),
			Expected: a.Count,
			Actual:   len(overlaps),
		}
	}
	return nil
}

func assertTreeParent(t *tree.Tree, a Assertion) error {
	child, err := query.Parse(a.Child)
	if err != nil {
		return &AssertionError{Type: AssertTreeParent, Message: fmt.Sprintf("child: %v", err)}
	}
	if t.Find(child) == nil {
		return &AssertionError{Type: AssertTreeParent, Message: fmt.Sprintf("%s is not in the tree", child)}
	}

	want := ""
	if a.Parent != "" {
		parent, err := query.Parse(a.Parent)
		if err != nil {
			return &AssertionError{Type: AssertTreeParent, Message: fmt.Sprintf("parent: %v", err)}
		}
		want = parent.String()
	}

	got := ""
	if p := t.Parent(child); p != nil {
		got = p.Query.String()
	}
	if got != want {
		return &AssertionError{
			Type:     AssertTreeParent,
			Message:  fmt.Sprintf("parent of %s", child),
			Expected: displayParent(want),
			Actual:   displayParent(got),
		}
	}
	return nil
}

func displayParent(s string) string {
	if s == "" {
		return "(root)"
	}
	return s
}
