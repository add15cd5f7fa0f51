package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "buffers_map.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "buffers_map", scenario.Name)
	assert.Len(t, scenario.Queries, 2)
	assert.Len(t, scenario.Assertions, 7)
	assert.Equal(t, AssertOrdering, scenario.Assertions[0].Type)
	assert.Equal(t, "StrictSuperset", scenario.Assertions[0].Expect)
}

func TestLoadScenario_ListingRelativeToScenario(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "buffers_map.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "listings", "buffers.yaml"), scenario.Listing)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), `
name: typo
description: "assertion instead of assertions"
queries: ['s:*']
assertion:
  - type: overlap_count
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing name",
			content: "description: d\nqueries: ['s:*']\nassertions: [{type: overlap_count}]\n",
			want:    "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\nqueries: ['s:*']\nassertions: [{type: overlap_count}]\n",
			want:    "description is required",
		},
		{
			name:    "no inputs",
			content: "name: n\ndescription: d\nassertions: [{type: overlap_count}]\n",
			want:    "listing or queries is required",
		},
		{
			name:    "no assertions",
			content: "name: n\ndescription: d\nqueries: ['s:*']\n",
			want:    "assertions list is required",
		},
		{
			name:    "listing not found",
			content: "name: n\ndescription: d\nlisting: nope.yaml\nassertions: [{type: overlap_count}]\n",
			want:    "listing file not found",
		},
		{
			name:    "missing type",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{count: 1}]\n",
			want:    "assertions[0]: type is required",
		},
		{
			name:    "unknown type",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: trace_contains}]\n",
			want:    `unknown assertion type "trace_contains"`,
		},
		{
			name:    "ordering without b",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: ordering, a: 's:*', expect: Equal}]\n",
			want:    "a and b are required",
		},
		{
			name:    "ordering bad expect",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: ordering, a: 's:*', b: 's:*', expect: Contains}]\n",
			want:    `expect must be an ordering, got "Contains"`,
		},
		{
			name:    "selects without listing",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: selects, filters: ['s:*']}]\n",
			want:    "selects requires a listing",
		},
		{
			name:    "selects without filters",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: selects}]\n",
			want:    "filters list is required",
		},
		{
			name:    "negative count",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: overlap_count, count: -1}]\n",
			want:    "count must be non-negative",
		},
		{
			name:    "tree_parent without child",
			content: "name: n\ndescription: d\nqueries: ['s:*']\nassertions: [{type: tree_parent, parent: 's:*'}]\n",
			want:    "child is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, t.TempDir(), tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
