// Package query provides hierarchical test query identifiers.
//
// A query addresses one test case or a whole subtree of the test corpus.
// It has four levels:
//
//	suite : file path : test path : params
//
// Each level is either precise (exactly one unit) or a wildcard (the unit
// and everything nested beneath it). Broadness is monotonic: once a level is
// a wildcard, the deeper levels do not exist.
//
// VARIANTS:
//
// Query is a sealed interface with exactly four implementations:
//
//	FileWildcard   webgpu:api,operation,*
//	TestWildcard   webgpu:api,operation:buffer,*
//	CaseWildcard   webgpu:api,operation:buffer,map:size=4;*
//	Single         webgpu:api,operation:buffer,map:size=4;mode="read"
//
// The capability interfaces TestAddressed and CaseAddressed are implemented
// only by the variants that carry a test path or params, so asking a
// FileWildcard for its test path does not compile:
//
//	switch q := q.(type) {
//	case FileWildcard:
//	    // suite and file path only
//	case CaseAddressed:
//	    _ = q.CaseParams()
//	}
//
// TEXT SYNTAX:
//
// Levels are separated by ':', path segments by ',', params by ';' and a
// param key from its value by '='. The wildcard '*' may only appear as the
// complete last part of the last level present. Param values use the text
// form of package params (JSON plus reserved strings for -0, NaN, ...).
// Keys starting with '_' are private: they are accepted by Parse but never
// written by String and never compared.
//
// Queries are immutable values. Constructors and Parse validate their input,
// so every Query handed to package compare is well formed.
package query
