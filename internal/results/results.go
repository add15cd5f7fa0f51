// Package results reads and writes test results, one per line:
//
//	<query> <tag;tag> <status>
//
// Tags are sorted and may be empty, in which case the line has two
// spaces between query and status. The query is everything before the
// tags, so it may contain spaces inside quoted param strings.
package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/roach88/ctsq/internal/query"
	"github.com/roach88/ctsq/internal/selection"
)

// Status is the outcome of a test case.
type Status string

const (
	Pass           Status = "PASS"
	Failure        Status = "FAIL"
	Crash          Status = "CRASH"
	Abort          Status = "ABORT"
	Skip           Status = "SKIP"
	Slow           Status = "SLOW"
	RetryOnFailure Status = "RETRY_ON_FAILURE"
	Unknown        Status = "UNKNOWN"
)

// Statuses lists every Status.
var Statuses = []Status{Pass, Failure, Crash, Abort, Skip, Slow, RetryOnFailure, Unknown}

// ParseStatus returns the Status named s.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if slices.Contains(Statuses, st) {
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// TagSeparator joins tags in the line format.
const TagSeparator = ";"

// Tags is a sorted set of tags.
type Tags []string

// TagsFrom returns the sorted, de-duplicated tags. Empty tags are dropped.
func TagsFrom(tags ...string) Tags {
	var out Tags
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (t Tags) String() string {
	return strings.Join(t, TagSeparator)
}

// Result is the status of one query under a set of tags.
type Result struct {
	Query  query.Query
	Tags   Tags
	Status Status
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s %s", r.Query, r.Tags, r.Status)
}

// ErrMalformed is wrapped by Parse errors for lines that do not have
// three fields.
var ErrMalformed = errors.New("malformed result line")

// Parse parses a single result line.
func Parse(line string) (Result, error) {
	line = strings.TrimSpace(line)

	i := strings.LastIndex(line, " ")
	if i < 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	statusText, rest := line[i+1:], line[:i]

	j := strings.LastIndex(rest, " ")
	if j < 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
	tagText, queryText := rest[j+1:], rest[:j]

	status, err := ParseStatus(statusText)
	if err != nil {
		return Result{}, err
	}
	q, err := query.Parse(queryText)
	if err != nil {
		return Result{}, err
	}
	var tags Tags
	if tagText != "" {
		tags = TagsFrom(strings.Split(tagText, TagSeparator)...)
	}
	return Result{Query: q, Tags: tags, Status: status}, nil
}

// List is an ordered list of results.
type List []Result

// ReadAll parses results from r. Blank lines and lines starting with '#'
// are skipped.
func ReadAll(r io.Reader) (List, error) {
	var out List
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	return out, nil
}

// Write writes one result per line.
func Write(w io.Writer, l List) error {
	bw := bufio.NewWriter(w)
	for _, r := range l {
		if _, err := fmt.Fprintln(bw, r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Filter returns the results whose query is selected by filter.
func (l List) Filter(filter query.Query) List {
	var out List
	for _, r := range l {
		if selection.Matches(filter, r.Query) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders results by query string, then tags.
func (l List) Sort() {
	slices.SortStableFunc(l, func(a, b Result) int {
		if c := strings.Compare(a.Query.String(), b.Query.String()); c != 0 {
			return c
		}
		return strings.Compare(a.Tags.String(), b.Tags.String())
	})
}

// Counts returns the number of results with each status.
func (l List) Counts() map[Status]int {
	out := make(map[Status]int)
	for _, r := range l {
		out[r.Status]++
	}
	return out
}
