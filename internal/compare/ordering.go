package compare

// Ordering is the relation between the test sets denoted by two queries.
type Ordering int

const (
	// Unordered: neither set contains the other.
	Unordered Ordering = iota
	// StrictSuperset: the first set properly contains the second.
	StrictSuperset
	// Equal: the sets are identical.
	Equal
	// StrictSubset: the first set is properly contained in the second.
	StrictSubset
)

func (o Ordering) String() string {
	switch o {
	case Unordered:
		return "Unordered"
	case StrictSuperset:
		return "StrictSuperset"
	case Equal:
		return "Equal"
	case StrictSubset:
		return "StrictSubset"
	}
	return "Ordering(invalid)"
}

// Reverse returns the ordering seen from the other side.
func (o Ordering) Reverse() Ordering {
	switch o {
	case StrictSuperset:
		return StrictSubset
	case StrictSubset:
		return StrictSuperset
	}
	return o
}

// Contains reports whether the first set contains the second, i.e. the
// ordering is Equal or StrictSuperset.
func (o Ordering) Contains() bool {
	return o == Equal || o == StrictSuperset
}
