package segtree

// Navigation within the implicit node array.
//
//	(k - 1) / 2   parent
//	2k + 1        first child
//	2k + 2        second child
//	P - 1 + i     node index of element i, where P is the number of leaves
//
// Coverage of a node is never stored. Traversals start at the root with
// [0, P-1] and split each range at its midpoint.

func parent(k int) int {
	assert(k > 0, "root node has no parent")
	return (k - 1) / 2
}

func leftChild(k int) int {
	return 2*k + 1
}

func rightChild(k int) int {
	return 2*k + 2
}

// leafNode maps element index i onto the index of its leaf node, for a tree
// with width leaves.
func leafNode(width, i int) int {
	return width - 1 + i
}

// midpoint splits coverage [left, right] into [left, mid] and [mid+1, right].
func midpoint(left, right int) int {
	return (left + right) / 2
}

// span is the number of elements in [left, right].
func span(left, right int) int64 {
	return int64(right - left + 1)
}

// disjoint is true if [first, last] and [left, right] do not intersect.
func disjoint(first, last, left, right int) bool {
	return first > right || last < left
}

// contains is true if [left, right] lies completely within [first, last].
func contains(first, last, left, right int) bool {
	return first <= left && right <= last
}

// overlap counts the elements in the intersection of [first, last] and
// [left, right]. The ranges must not be disjoint.
func overlap(first, last, left, right int) int64 {
	return span(max(first, left), min(last, right))
}

// leafCount returns the smallest power of two >= n, and 1 for n = 0.
func leafCount(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
