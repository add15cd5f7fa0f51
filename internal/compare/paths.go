package compare

// Paths compares two file paths, or two test paths within a file.
//
// A shorter path is higher in the tree, so a proper prefix is the
// StrictSuperset. Any differing segment within the common length makes the
// paths Unordered regardless of their lengths.
func Paths(a, b []string) Ordering {
	shorter := min(len(a), len(b))
	for i := 0; i < shorter; i++ {
		if a[i] != b[i] {
			return Unordered
		}
	}

	switch {
	case len(a) == len(b):
		return Equal
	case len(a) < len(b):
		return StrictSuperset
	default:
		return StrictSubset
	}
}
