package segtree

// Add adds delta to every element in [first, last].
//
// Nodes completely covered by the range receive delta as a pending value and
// are not descended into. Partially covered nodes are re-aggregated from their
// children on the way back up. Add visits O(log n) nodes.
//
// Add panics with ErrIndexOutOfBounds if first or last are not addressable or
// if first > last. Padding positions (Len() ≤ i < Cap()) may be targeted.
func (t *Tree) Add(first, last int, delta int64) {
	t.checkRange(first, last)
	T().Debugf("segtree: add %d to [%d, %d]", delta, first, last)
	t.add(first, last, delta, 0, 0, t.width-1)
}

// add is the recursive descent of Add for node k with coverage [left, right].
func (t *Tree) add(first, last int, delta int64, k, left, right int) {
	if disjoint(first, last, left, right) {
		return
	}
	if contains(first, last, left, right) {
		t.nodes[k].pending += delta
		return
	}
	mid := midpoint(left, right)
	t.add(first, last, delta, leftChild(k), left, mid)
	t.add(first, last, delta, rightChild(k), mid+1, right)
	t.recombine(k, left, mid, right)
}

// recombine recomputes the aggregate of inner node k from its children. The
// children's coverages are [left, mid] and [mid+1, right].
func (t *Tree) recombine(k, left, mid, right int) {
	l, r := t.nodes[leftChild(k)], t.nodes[rightChild(k)]
	t.nodes[k].aggregate = l.aggregate + l.pending*span(left, mid) +
		r.aggregate + r.pending*span(mid+1, right)
}

// Set overwrites the element at index i with value. It is a shortcut for
// adding the difference between value and the current element.
//
// Set panics with ErrIndexOutOfBounds if i is not addressable.
func (t *Tree) Set(i int, value int64) {
	t.Add(i, i, value-t.Get(i))
}
