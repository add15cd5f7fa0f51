package compare

// combine turns the raw ordering of one level into the ordering of the
// whole queries, given whether each side is a wildcard ("broad") at that
// level. For the test level, for example:
//   - anything at or above suite:a,* is broad
//   - anything at or below suite:a:* is precise
//
// It is only called for decisive levels, so raw == Equal requires at least
// one broad side.
func combine(raw Ordering, aBroad, bBroad bool) Ordering {
	if raw == Equal && !aBroad && !bBroad {
		panic(&InvariantError{Message: "combine called on an equal level where neither side is broad"})
	}

	switch {
	case raw == Unordered:
		return Unordered
	case aBroad && bBroad:
		return raw
	case !aBroad && !bBroad:
		// Two different precise units never nest.
		return Unordered
	case aBroad && raw != StrictSubset:
		return StrictSuperset
	case bBroad && raw != StrictSuperset:
		return StrictSubset
	}
	// The broad side is also the longer one: the two do not nest.
	return Unordered
}
