// Package params provides the value model for test-case parameters.
//
// Parameters are the leaf level of a test query: a mapping from a parameter
// name to a JSON-like value. This package imports nothing internal so that
// both the query and compare packages can build on it.
//
// Key design constraints:
//   - Value is a sealed interface; only the types in this package implement it
//   - Numbers are float64 and keep their sign, so +0 and -0 are distinct values
//   - Keys starting with PrivatePrefix are private and never take part in
//     query text or query comparison
//   - The text form is canonical: the same value always formats identically
package params
