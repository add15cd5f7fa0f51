package compare

import "github.com/roach88/ctsq/internal/params"

// Params compares two parameter sets over their public keys.
//
// Each key constrains the set of cases, so the side with fewer keys is the
// broader one. Values of shared keys must agree under eq; otherwise the
// sets are disjoint and the result is Unordered.
//
// The result depends only on key membership and value equality, never on
// map iteration order.
func Params(a, b params.Params, eq params.EqualFunc) Ordering {
	aKeys, bKeys, common := 0, 0, 0
	for k, av := range a {
		if !params.KeyIsPublic(k) {
			continue
		}
		aKeys++
		bv, ok := b[k]
		if !ok {
			continue
		}
		if !eq(av, bv) {
			return Unordered
		}
		common++
	}
	for k := range b {
		if params.KeyIsPublic(k) {
			bKeys++
		}
	}

	aOnly, bOnly := aKeys-common, bKeys-common
	switch {
	case aOnly == 0 && bOnly == 0:
		return Equal
	case aOnly == 0:
		return StrictSuperset
	case bOnly == 0:
		return StrictSubset
	}
	return Unordered
}
