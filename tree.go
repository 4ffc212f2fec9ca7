package segtree

import (
	"fmt"
	"strings"
)

// node is the payload of a tree node.
//
// aggregate is the sum of all elements covered by the node, including every
// update applied below the node, but excluding the node's own pending delta.
// pending is a delta which applies to every single element covered by the node.
type node struct {
	aggregate int64
	pending   int64
}

// Tree is a segment tree over int64 values, supporting range additions and
// range sums in O(log n). The zero value is not usable, clients have to call
// New.
//
// The shape of a tree is fixed at construction time: elements can be changed,
// but neither inserted nor removed.
type Tree struct {
	nodes []node // implicit binary tree, 2*width-1 nodes
	width int    // number of leaves, a power of two
	n     int    // number of elements the tree has been built from
}

// New builds a tree from a sequence of elements. The elements are copied,
// the tree does not hold on to the argument slice.
//
// The number of leaves is rounded up to the next power of two. Padding leaves
// start out as 0. Calling New without arguments creates an empty tree, for
// which every element access is out of bounds.
func New(elements ...int64) *Tree {
	width := leafCount(len(elements))
	t := &Tree{
		nodes: make([]node, 2*width-1),
		width: width,
		n:     len(elements),
	}
	for i, value := range elements {
		t.nodes[leafNode(width, i)].aggregate = value
	}
	for k := width - 2; k >= 0; k-- {
		t.nodes[k].aggregate = t.nodes[leftChild(k)].aggregate + t.nodes[rightChild(k)].aggregate
	}
	T().Debugf("segtree: built tree with %d elements, %d leaves, %d nodes", t.n, width, len(t.nodes))
	return t
}

// Len returns the number of elements the tree has been built from.
func (t *Tree) Len() int {
	return t.n
}

// Cap returns the number of addressable elements, including padding.
// Valid indices for all operations are 0 ≤ i < Cap(). An empty tree has
// capacity 0.
func (t *Tree) Cap() int {
	if t.n == 0 {
		return 0
	}
	return t.width
}

// String returns the node array as pairs of [aggregate pending], in node
// index order. It is intended for debugging.
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for k, nd := range t.nodes {
		if k > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%d %d]", nd.aggregate, nd.pending)
	}
	b.WriteByte(']')
	return b.String()
}

// checkIndex panics with ErrIndexOutOfBounds if i is not addressable.
func (t *Tree) checkIndex(i int) {
	if i < 0 || i >= t.Cap() {
		panic(fmt.Errorf("%w: index %d, capacity %d", ErrIndexOutOfBounds, i, t.Cap()))
	}
}

// checkRange panics with ErrIndexOutOfBounds if [first, last] is not an
// addressable, non-empty range.
func (t *Tree) checkRange(first, last int) {
	t.checkIndex(first)
	t.checkIndex(last)
	if first > last {
		panic(fmt.Errorf("%w: inverted range [%d, %d]", ErrIndexOutOfBounds, first, last))
	}
}
