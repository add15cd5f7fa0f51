package harness

import (
	"context"
	"fmt"

	"github.com/roach88/ctsq/internal/listing"
	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/tree"
)

// Result captures the outcome of running a scenario.
type Result struct {
	// Pass is true if all assertions passed.
	Pass bool

	// Errors contains assertion failure messages, one per failed assertion.
	Errors []string

	// Tree is the rendered containment tree of every scenario query.
	Tree string
}

// AddError records a failed assertion.
func (r *Result) AddError(err error) {
	r.Pass = false
	r.Errors = append(r.Errors, err.Error())
}

// inputs holds the parsed queries a scenario is evaluated against.
type inputs struct {
	// queries are the scenario's own queries followed by listing cases.
	queries []query.Query
	// cases are the listing cases alone.
	cases []query.Query
	tree  *tree.Tree
}

// Run executes a scenario and returns the result.
//
// An error is returned only when the scenario's inputs cannot be built
// (an unparsable query or a broken listing). Assertion failures are
// reported in Result.Errors.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	in, err := buildInputs(scenario)
	if err != nil {
		return nil, err
	}

	result := &Result{Pass: true, Tree: in.tree.String()}
	for i, a := range scenario.Assertions {
		if err := evaluate(ctx, in, a); err != nil {
			result.AddError(fmt.Errorf("assertions[%d]: %w", i, err))
		}
	}
	return result, nil
}

func buildInputs(s *Scenario) (*inputs, error) {
	in := &inputs{}
	for _, raw := range s.Queries {
		q, err := query.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", raw, err)
		}
		in.queries = append(in.queries, q)
	}

	if s.Listing != "" {
		l, err := listing.Load(s.Listing)
		if err != nil {
			return nil, err
		}
		cases, err := l.Queries()
		if err != nil {
			return nil, err
		}
		in.cases = cases
		in.queries = append(in.queries, cases...)
	}

	in.tree = tree.New(in.queries...)
	return in, nil
}

func evaluate(ctx context.Context, in *inputs, a Assertion) error {
	switch a.Type {
	case AssertOrdering:
		return assertOrdering(a)
	case AssertSelects:
		return assertSelects(ctx, in.cases, a)
	case AssertOverlapCount:
		return assertOverlapCount(in.queries, a)
	case AssertTreeParent:
		return assertTreeParent(in.tree, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}
