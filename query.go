package segtree

// Get returns the element at index i. Get walks from the leaf of element i up
// to the root, collecting pending deltas on the way.
//
// Get panics with ErrIndexOutOfBounds if i is not addressable.
func (t *Tree) Get(i int) int64 {
	t.checkIndex(i)
	k := leafNode(t.width, i)
	value := t.nodes[k].aggregate + t.nodes[k].pending
	for k > 0 {
		k = parent(k)
		value += t.nodes[k].pending
	}
	return value
}

// Sum returns the sum of the elements in [first, last].
//
// Sum panics with ErrIndexOutOfBounds if first or last are not addressable or
// if first > last.
func (t *Tree) Sum(first, last int) int64 {
	t.checkRange(first, last)
	return t.sum(first, last, 0, 0, t.width-1)
}

// sum is the recursive descent of Sum for node k with coverage [left, right].
// Pending deltas are per element and therefore count once for every element
// of the query range below node k.
func (t *Tree) sum(first, last, k, left, right int) int64 {
	if disjoint(first, last, left, right) {
		return 0
	}
	nd := t.nodes[k]
	if contains(first, last, left, right) {
		return nd.aggregate + nd.pending*span(left, right)
	}
	mid := midpoint(left, right)
	return nd.pending*overlap(first, last, left, right) +
		t.sum(first, last, leftChild(k), left, mid) +
		t.sum(first, last, rightChild(k), mid+1, right)
}

// Total returns the sum over all addressable elements, padding included.
// For an empty tree Total is 0.
func (t *Tree) Total() int64 {
	return t.nodes[0].aggregate + t.nodes[0].pending*int64(t.width)
}

// Values returns a copy of the elements 0 ≤ i < Len().
func (t *Tree) Values() []int64 {
	values := make([]int64, t.n)
	for i := range values {
		values[i] = t.Get(i)
	}
	return values
}

// PrefixSums returns Sum(0, i) for every element 0 ≤ i < Len().
func (t *Tree) PrefixSums() []int64 {
	sums := make([]int64, t.n)
	for i := range sums {
		sums[i] = t.Sum(0, i)
	}
	return sums
}
