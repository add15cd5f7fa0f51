// Package tree arranges test queries into a containment tree.
//
// A node's children are the queries it strictly contains that are not
// contained by another child. Placement is decided solely by
// compare.Queries, and the shape depends only on the set of queries, not
// on the order they are inserted in.
package tree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/roach88/ctsq/internal/compare"
	"github.com/roach88/ctsq/internal/query"
)

// Node is a query in the tree.
type Node struct {
	Query    query.Query
	Children []*Node
}

// Tree is a forest of query nodes under an unnamed root.
//
// A query's parent is found by descending from the root, at each level
// taking the first child in sorted order that strictly contains it.
// Unordered queries that overlap (x=1;* and y=2;*) are therefore siblings,
// and a query contained by both goes under the one that sorts first.
//
// Tree is not safe for concurrent mutation; build it from one goroutine.
type Tree struct {
	Root Node
	size int
}

// New builds a tree holding the given queries.
func New(queries ...query.Query) *Tree {
	t := &Tree{}
	t.build(queries)
	return t
}

// Len returns the number of distinct queries in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Insert adds q and returns its node. If an Equal query is already
// present, its node is returned and the tree is unchanged.
//
// Inserting a query that strictly contains queries already in the tree
// rebuilds the tree, so the result matches New over the same queries.
func (t *Tree) Insert(q query.Query) *Node {
	if existing := t.Find(q); existing != nil {
		return existing
	}
	if t.containsAny(q) {
		t.build(append(t.Queries(), q))
		return t.Find(q)
	}
	return t.place(q)
}

// build replaces the tree's contents with queries. Queries are placed in
// rank order, so every strict superset is placed before what it contains
// and no placed node ever needs to move.
func (t *Tree) build(queries []query.Query) {
	sorted := slices.Clone(queries)
	slices.SortStableFunc(sorted, compareRank)

	t.Root = Node{}
	t.size = 0
	for _, q := range sorted {
		if t.Find(q) == nil {
			t.place(q)
		}
	}
}

// place attaches q as a leaf beneath its parent. q must not contain any
// node already in the tree.
func (t *Tree) place(q query.Query) *Node {
	parent := &t.Root
descend:
	for {
		for _, child := range parent.Children {
			if compare.Queries(q, child.Query) == compare.StrictSubset {
				parent = child
				continue descend
			}
		}
		break
	}

	n := &Node{Query: q}
	parent.Children = append(parent.Children, n)
	sortNodes(parent.Children)
	t.size++
	return n
}

func (t *Tree) containsAny(q query.Query) bool {
	found := false
	t.Walk(func(n *Node, _ int) bool {
		if !found && compare.Queries(q, n.Query) == compare.StrictSuperset {
			found = true
		}
		return !found
	})
	return found
}

// compareRank orders queries so that a strict superset always comes
// before its subsets. A superset is broad at the level where the two
// first differ, so it is either precise to a shallower level or, at the
// same level, has a shorter path or fewer public params.
func compareRank(a, b query.Query) int {
	if c := cmp.Compare(a.Level(), b.Level()); c != 0 {
		return c
	}
	if c := cmp.Compare(width(a), width(b)); c != 0 {
		return c
	}
	return strings.Compare(a.String(), b.String())
}

// width is the size of the query at its own level.
func width(q query.Query) int {
	switch q := q.(type) {
	case query.CaseAddressed:
		return len(q.CaseParams().PublicKeys())
	case query.TestAddressed:
		return len(q.TestPath())
	}
	return len(q.FilePath())
}

// Find returns the node holding a query Equal to q, or nil.
// Every branch that contains q is searched, so overlapping siblings are
// handled.
func (t *Tree) Find(q query.Query) *Node {
	n, _ := find(&t.Root, q)
	return n
}

// Parent returns the node directly above the node Equal to q. It returns
// nil when q is not in the tree or sits at the top level.
func (t *Tree) Parent(q query.Query) *Node {
	_, p := find(&t.Root, q)
	if p == &t.Root {
		return nil
	}
	return p
}

// find searches beneath parent and returns the matching node with its
// parent.
func find(parent *Node, q query.Query) (*Node, *Node) {
	for _, n := range parent.Children {
		switch compare.Queries(q, n.Query) {
		case compare.Equal:
			return n, parent
		case compare.StrictSubset:
			if found, p := find(n, q); found != nil {
				return found, p
			}
		}
	}
	return nil, nil
}

// Walk visits every node depth first, parents before children, in sorted
// order. Returning false from fn skips the node's children.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	for _, child := range t.Root.Children {
		walk(child, 0, fn)
	}
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Queries returns every query in the tree in walk order.
func (t *Tree) Queries() []query.Query {
	out := make([]query.Query, 0, t.size)
	t.Walk(func(n *Node, _ int) bool {
		out = append(out, n.Query)
		return true
	})
	return out
}

// Leaves returns the queries of nodes without children, in walk order.
func (t *Tree) Leaves() []query.Query {
	var out []query.Query
	t.Walk(func(n *Node, _ int) bool {
		if len(n.Children) == 0 {
			out = append(out, n.Query)
		}
		return true
	})
	return out
}

// Subtree returns the queries at or beneath the node Equal to q.
// Returns nil if q is not in the tree.
func (t *Tree) Subtree(q query.Query) []query.Query {
	n := t.Find(q)
	if n == nil {
		return nil
	}
	var out []query.Query
	walk(n, 0, func(n *Node, _ int) bool {
		out = append(out, n.Query)
		return true
	})
	return out
}

// String renders the tree with two spaces of indent per level.
func (t *Tree) String() string {
	var sb strings.Builder
	t.Walk(func(n *Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.Query.String())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func sortNodes(nodes []*Node) {
	slices.SortFunc(nodes, func(a, b *Node) int {
		return strings.Compare(a.Query.String(), b.Query.String())
	})
}
