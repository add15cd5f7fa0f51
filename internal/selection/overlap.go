package selection

import (
	"fmt"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/query"
)

// Overlap is a pair of queries that select some of the same cases.
// Ordering is how A relates to B.
type Overlap struct {
	A        query.Query
	B        query.Query
	Ordering compare.Ordering
}

func (o Overlap) String() string {
	return fmt.Sprintf("%s %s %s", o.A, o.Ordering, o.B)
}

// Overlaps returns every pair of queries that are Equal or strictly
// ordered, with A earlier in the input than B.
//
// Unordered pairs are not reported even when their case sets intersect
// (x=1;* and y=2;*).
func Overlaps(queries []query.Query) []Overlap {
	var out []Overlap
	for i := range queries {
		for j := i + 1; j < len(queries); j++ {
			ord := compare.Queries(queries[i], queries[j])
			if ord == compare.Unordered {
				continue
			}
			out = append(out, Overlap{A: queries[i], B: queries[j], Ordering: ord})
		}
	}
	return out
}
