package listing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/ctsq/internal/params"
	"github.com/roach88/ctsq/internal/query"
)

// Listing enumerates the cases of one suite.
type Listing struct {
	Suite string `yaml:"suite" json:"suite"`
	Files []File `yaml:"files" json:"files"`
}

// File is one test file. Path is its comma-separated file path.
type File struct {
	Path  string `yaml:"path" json:"path"`
	Tests []Test `yaml:"tests" json:"tests"`
}

// Test is one test function and its parameter cases.
type Test struct {
	Name    string           `yaml:"name" json:"name"`
	Cases   []map[string]any `yaml:"cases,omitempty" json:"cases,omitempty"`
	Combine map[string][]any `yaml:"combine,omitempty" json:"combine,omitempty"`
}

// Validate checks that every path and test name is a well-formed query
// part.
func (l *Listing) Validate() error {
	if l.Suite == "" {
		return &LoadError{Code: ErrCodeInvalid, Message: "suite is required"}
	}
	for i, f := range l.Files {
		if f.Path == "" {
			return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("files[%d]: path is required", i)}
		}
		if _, err := query.NewFileWildcard(l.Suite, splitPath(f.Path)...); err != nil {
			return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("files[%d]: %v", i, err), Err: err}
		}
		for j, t := range f.Tests {
			if t.Name == "" {
				return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("files[%d].tests[%d]: name is required", i, j)}
			}
			if _, err := query.NewTestWildcard(l.Suite, splitPath(f.Path), splitPath(t.Name)); err != nil {
				return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("files[%d].tests[%d]: %v", i, j, err), Err: err}
			}
			for key, values := range t.Combine {
				if len(values) == 0 {
					return &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("%s:%s: combine axis %q has no values", f.Path, t.Name, key)}
				}
			}
		}
	}
	return nil
}

// Queries expands the listing into its leaf cases, in listing order.
// Returns a *LoadError if a case has invalid params or two cases of a test
// compare Equal.
func (l *Listing) Queries() ([]query.Query, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	var out []query.Query
	for _, f := range l.Files {
		file := splitPath(f.Path)
		for _, t := range f.Tests {
			test := splitPath(t.Name)
			rows, err := expand(t)
			if err != nil {
				return nil, &LoadError{Code: ErrCodeBadCase, Message: fmt.Sprintf("%s:%s: %v", f.Path, t.Name, err), Err: err}
			}

			seen := make(map[string]bool, len(rows))
			for _, row := range rows {
				q, err := query.NewSingle(l.Suite, file, test, row)
				if err != nil {
					return nil, &LoadError{Code: ErrCodeBadCase, Message: fmt.Sprintf("%s:%s: %v", f.Path, t.Name, err), Err: err}
				}
				key := q.String()
				if seen[key] {
					return nil, &LoadError{Code: ErrCodeDuplicate, Message: fmt.Sprintf("duplicate case %s", key)}
				}
				seen[key] = true
				out = append(out, q)
			}
		}
	}
	return out, nil
}

// expand crosses the explicit cases of t with its combine axes.
func expand(t Test) ([]params.Params, error) {
	rows := []params.Params{{}}
	if len(t.Cases) > 0 {
		rows = rows[:0]
		for _, c := range t.Cases {
			p, err := params.ParamsFromMap(c)
			if err != nil {
				return nil, err
			}
			rows = append(rows, p)
		}
	}

	keys := make([]string, 0, len(t.Combine))
	for k := range t.Combine {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		values := make([]params.Value, len(t.Combine[key]))
		for i, raw := range t.Combine[key] {
			v, err := params.FromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("combine %s[%d]: %w", key, i, err)
			}
			values[i] = v
		}

		next := make([]params.Params, 0, len(rows)*len(values))
		for _, row := range rows {
			if _, dup := row[key]; dup {
				return nil, fmt.Errorf("combine key %q is already set by a case", key)
			}
			for _, v := range values {
				p := row.Clone()
				p[key] = v
				next = append(next, p)
			}
		}
		rows = next
	}
	return rows, nil
}

func splitPath(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, query.PathSeparator)
}
