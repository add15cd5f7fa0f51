// Package harness runs query conformance scenarios.
//
// A scenario names a set of queries, optionally the cases of a listing,
// and assertions about how those queries relate. Scenarios make the
// expected orderings, selections and tree shapes of a suite executable.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: buffers_map
//	description: "Map cases nest under their mode wildcard"
//	listing: ../listings/webgpu.yaml
//	queries:
//	  - 'webgpu:api,*'
//	assertions:
//	  - type: ordering
//	    a: 'webgpu:api,*'
//	    b: 'webgpu:api,operation,buffers:map:*'
//	    expect: StrictSuperset
//	  - type: selects
//	    filters: ['webgpu:api,operation,buffers:map:mode="read";*']
//	    cases:
//	      - 'webgpu:api,operation,buffers:map:mode="read";size=4'
//	  - type: overlap_count
//	    count: 1
//	  - type: tree_parent
//	    child: 'webgpu:api,operation,buffers:unmap:'
//	    parent: 'webgpu:api,*'
//
// The listing path is relative to the scenario file.
//
// # Assertion Types
//
//   - ordering: compare.Queries(a, b) equals expect
//   - selects: the listing cases selected by filters are exactly expect, in order
//   - overlap_count: the scenario's queries contain exactly count overlapping pairs
//   - tree_parent: in the tree of all queries, child sits directly beneath parent
//     (an empty parent means child is a root)
//
// # Golden Files
//
// RunWithGolden compares the rendered query tree of a scenario against
// testdata/golden/<name>.golden.
package harness
