// Package listing reads suite listings: the files, tests and parameter
// cases a suite contains, written in YAML, JSON or CUE.
//
// A listing looks like:
//
//	suite: webgpu
//	files:
//	  - path: api,operation,buffers
//	    tests:
//	      - name: map
//	        combine:
//	          mode: [read, write]
//	          size: [4, 8]
//	      - name: unmap
//
// Each test expands to one case per row of its explicit cases crossed with
// the cartesian product of its combine axes. A test with neither has a
// single case with no params.
//
// Axis keys are crossed in sorted order with the last key varying
// fastest; values keep their listed order.
package listing
