package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ctsq/internal/compare"
)

// Scenario defines a query conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Listing is an optional listing file whose cases join the queries.
	// Relative paths are resolved against the scenario file's directory.
	Listing string `yaml:"listing,omitempty"`

	// Queries are query strings under test, placed before listing cases.
	Queries []string `yaml:"queries,omitempty"`

	// Assertions are checked in order; every failure is reported.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates a relation between queries.
type Assertion struct {
	// Type specifies the assertion type:
	// - "ordering": compare A with B, expect Expect
	// - "selects": Filters select exactly Cases from the listing
	// - "overlap_count": Count overlapping pairs among all queries
	// - "tree_parent": Child sits directly beneath Parent
	Type string `yaml:"type"`

	A      string `yaml:"a,omitempty"`
	B      string `yaml:"b,omitempty"`
	Expect string `yaml:"expect,omitempty"`

	Filters []string `yaml:"filters,omitempty"`
	Cases   []string `yaml:"cases,omitempty"`

	Count int `yaml:"count,omitempty"`

	Child  string `yaml:"child,omitempty"`
	Parent string `yaml:"parent,omitempty"`
}

// Assertion type constants.
const (
	AssertOrdering     = "ordering"
	AssertSelects      = "selects"
	AssertOverlapCount = "overlap_count"
	AssertTreeParent   = "tree_parent"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Listing != "" && !filepath.IsAbs(scenario.Listing) {
		scenario.Listing = filepath.Join(filepath.Dir(path), scenario.Listing)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Listing == "" && len(s.Queries) == 0 {
		return fmt.Errorf("listing or queries is required")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if s.Listing != "" {
		if _, err := os.Stat(s.Listing); os.IsNotExist(err) {
			return fmt.Errorf("listing file not found: %s", s.Listing)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, s.Listing != ""); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, hasListing bool) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertOrdering:
		if a.A == "" || a.B == "" {
			return fmt.Errorf("assertions[%d]: a and b are required for ordering", index)
		}
		if _, ok := parseOrdering(a.Expect); !ok {
			return fmt.Errorf("assertions[%d]: expect must be an ordering, got %q", index, a.Expect)
		}
	case AssertSelects:
		if len(a.Filters) == 0 {
			return fmt.Errorf("assertions[%d]: filters list is required for selects", index)
		}
		if !hasListing {
			return fmt.Errorf("assertions[%d]: selects requires a listing", index)
		}
	case AssertOverlapCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for overlap_count", index)
		}
	case AssertTreeParent:
		if a.Child == "" {
			return fmt.Errorf("assertions[%d]: child is required for tree_parent", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

func parseOrdering(s string) (compare.Ordering, bool) {
	for _, o := range []compare.Ordering{compare.Unordered, compare.StrictSuperset, compare.Equal, compare.StrictSubset} {
		if o.String() == s {
			return o, true
		}
	}
	return compare.Unordered, false
}
