package compare

import (
	"github.com/roach88/ctsq/internal/params"
	"github.com/roach88/ctsq/internal/query"
)

// Comparator compares queries with a configurable param equality.
// The zero value is not usable; start from Default.
type Comparator struct {
	// ParamEqual decides whether two values of a shared param key agree.
	ParamEqual params.EqualFunc
}

// Default compares param values with params.Equal, which keeps +0 and -0
// apart.
var Default = Comparator{ParamEqual: params.Equal}

// Queries compares a and b with the Default comparator.
func Queries(a, b query.Query) Ordering {
	return Default.Queries(a, b)
}

// level is one step of the top-down walk: how to compare two queries at
// that level, and whether a query is a wildcard there.
type level struct {
	name    string
	broad   func(query.Query) bool
	compare func(c Comparator, a, b query.Query) Ordering
}

// levels below the suite, shallowest first. A level is only reached when
// every level above it was equal and precise on both sides, which is what
// guarantees the type assertions in compareTests and compareCases.
var levels = [...]level{
	{name: "file", broad: query.IsMultiFile, compare: compareFiles},
	{name: "test", broad: query.IsMultiTest, compare: compareTests},
	{name: "case", broad: query.IsMultiCase, compare: compareCases},
}

// Queries compares a and b.
//
// Queries from different suites are always Unordered. Otherwise the
// levels are visited in order; the first level that differs or where either
// side is a wildcard decides the result through combine. If every level is
// equal and precise the queries are Equal.
//
// Panics with *InvariantError if a query lacks the test path or params its
// level promises.
func (c Comparator) Queries(a, b query.Query) Ordering {
	if a.SuiteName() != b.SuiteName() {
		return Unordered
	}

	for _, lvl := range levels {
		raw := lvl.compare(c, a, b)
		aBroad, bBroad := lvl.broad(a), lvl.broad(b)
		if raw != Equal || aBroad || bBroad {
			return combine(raw, aBroad, bBroad)
		}
	}
	return Equal
}

func compareFiles(_ Comparator, a, b query.Query) Ordering {
	return Paths(a.FilePath(), b.FilePath())
}

func compareTests(_ Comparator, a, b query.Query) Ordering {
	return Paths(mustTestAddressed(a).TestPath(), mustTestAddressed(b).TestPath())
}

func compareCases(c Comparator, a, b query.Query) Ordering {
	return Params(mustCaseAddressed(a).CaseParams(), mustCaseAddressed(b).CaseParams(), c.ParamEqual)
}

func mustTestAddressed(q query.Query) query.TestAddressed {
	ta, ok := q.(query.TestAddressed)
	if !ok {
		panic(&InvariantError{
			Level:   "test",
			Query:   q.String(),
			Message: "file-precise query carries no test path",
		})
	}
	return ta
}

func mustCaseAddressed(q query.Query) query.CaseAddressed {
	ca, ok := q.(query.CaseAddressed)
	if !ok {
		panic(&InvariantError{
			Level:   "case",
			Query:   q.String(),
			Message: "test-precise query carries no params",
		})
	}
	return ca
}
