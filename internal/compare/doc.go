// Package compare decides how two test queries relate.
//
// Every query denotes a set of leaf test cases. Queries compares two
// queries and answers with an Ordering:
//
//	Equal           both denote the same set
//	StrictSubset    a's set is a proper subset of b's
//	StrictSuperset  a's set is a proper superset of b's
//	Unordered       neither contains the other (includes different suites)
//
// The comparison walks the levels of a query top down (file path, test
// path, params). A level is decisive when the two sides differ there or
// either side is a wildcard there; the decisive level alone determines the
// answer, because a wildcard subsumes everything beneath it.
//
// The relation is a partial order: Queries(b, a) is always
// Queries(a, b).Reverse(), and Queries(a, a) is Equal.
//
// All functions are pure and safe for concurrent use.
package compare
