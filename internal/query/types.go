package query

import "github.com/roach88/ctsq/internal/params"

// Level is the depth at which a query stops being precise.
type Level int

const (
	// LevelFiles: suite:a,b,* (every file under a,b)
	LevelFiles Level = 1 + iota
	// LevelTests: suite:a,b:c,* (every test under c in file a,b)
	LevelTests
	// LevelCases: suite:a,b:c:k=1;* (every case of test c with k=1)
	LevelCases
	// LevelCase: suite:a,b:c:k=1 (exactly one case)
	LevelCase
)

func (l Level) String() string {
	switch l {
	case LevelFiles:
		return "files"
	case LevelTests:
		return "tests"
	case LevelCases:
		return "cases"
	case LevelCase:
		return "case"
	}
	return "unknown"
}

// Query is a hierarchical test identifier.
//
// This is a sealed interface - only FileWildcard, TestWildcard,
// CaseWildcard and Single implement it.
type Query interface {
	// SuiteName returns the suite the query belongs to.
	SuiteName() string
	// FilePath returns the file path segments. Callers must not modify it.
	FilePath() []string
	// Level reports how deep the query is precise.
	Level() Level
	// String returns the query text.
	String() string

	queryNode() // Marker method - seals interface to this package
}

// TestAddressed is implemented by queries that are precise at the file
// level and therefore carry a test path.
type TestAddressed interface {
	Query
	// TestPath returns the test path segments. Callers must not modify it.
	TestPath() []string
}

// CaseAddressed is implemented by queries that are precise at the test
// level and therefore carry params.
type CaseAddressed interface {
	TestAddressed
	// CaseParams returns the case params, private keys included.
	// Callers must not modify it.
	CaseParams() params.Params
}

// FileWildcard addresses every test in every file under File.
// An empty File addresses the whole suite.
type FileWildcard struct {
	Suite string
	File  []string
}

func (FileWildcard) queryNode()           {}
func (q FileWildcard) SuiteName() string  { return q.Suite }
func (q FileWildcard) FilePath() []string { return q.File }
func (FileWildcard) Level() Level         { return LevelFiles }

// TestWildcard addresses every test under Test within one file.
// An empty Test addresses the whole file.
type TestWildcard struct {
	Suite string
	File  []string
	Test  []string
}

func (TestWildcard) queryNode()           {}
func (q TestWildcard) SuiteName() string  { return q.Suite }
func (q TestWildcard) FilePath() []string { return q.File }
func (q TestWildcard) TestPath() []string { return q.Test }
func (TestWildcard) Level() Level         { return LevelTests }

// CaseWildcard addresses every case of one test whose params include
// Params. Empty Params addresses every case of the test.
type CaseWildcard struct {
	Suite  string
	File   []string
	Test   []string
	Params params.Params
}

func (CaseWildcard) queryNode()                  {}
func (q CaseWildcard) SuiteName() string         { return q.Suite }
func (q CaseWildcard) FilePath() []string        { return q.File }
func (q CaseWildcard) TestPath() []string        { return q.Test }
func (q CaseWildcard) CaseParams() params.Params { return q.Params }
func (CaseWildcard) Level() Level                { return LevelCases }

// Single addresses exactly one test case.
type Single struct {
	Suite  string
	File   []string
	Test   []string
	Params params.Params
}

func (Single) queryNode()                  {}
func (q Single) SuiteName() string         { return q.Suite }
func (q Single) FilePath() []string        { return q.File }
func (q Single) TestPath() []string        { return q.Test }
func (q Single) CaseParams() params.Params { return q.Params }
func (Single) Level() Level                { return LevelCase }

// IsMultiFile reports whether q is a wildcard at the file level.
func IsMultiFile(q Query) bool { return q.Level() <= LevelFiles }

// IsMultiTest reports whether q is a wildcard at the test level or above.
func IsMultiTest(q Query) bool { return q.Level() <= LevelTests }

// IsMultiCase reports whether q is a wildcard at the case level or above.
func IsMultiCase(q Query) bool { return q.Level() <= LevelCases }
