package segtree

import "fmt"

// Check validates structural tree invariants.
//
// The node array must hold 2P-1 nodes for a power of two P, and the aggregate
// of every inner node must equal the aggregates of its children plus their
// pending deltas, spread over their coverages. Check does not make any
// assumptions about pending deltas of the root or of padding leaves.
//
// Check is intended for tests and debugging.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorruptTree)
	}
	if t.width <= 0 || t.width&(t.width-1) != 0 {
		return fmt.Errorf("%w: leaf count %d is not a power of two", ErrCorruptTree, t.width)
	}
	if len(t.nodes) != 2*t.width-1 {
		return fmt.Errorf("%w: %d nodes for %d leaves", ErrCorruptTree, len(t.nodes), t.width)
	}
	if t.n < 0 || t.n > t.width {
		return fmt.Errorf("%w: %d elements for %d leaves", ErrCorruptTree, t.n, t.width)
	}
	return t.checkNode(0, 0, t.width-1)
}

func (t *Tree) checkNode(k, left, right int) error {
	if left == right {
		if k != leafNode(t.width, left) {
			return fmt.Errorf("%w: node %d covers element %d but is not its leaf", ErrCorruptTree, k, left)
		}
		return nil
	}
	mid := midpoint(left, right)
	l, r := t.nodes[leftChild(k)], t.nodes[rightChild(k)]
	want := l.aggregate + l.pending*span(left, mid) + r.aggregate + r.pending*span(mid+1, right)
	if t.nodes[k].aggregate != want {
		return fmt.Errorf("%w: node %d covering [%d, %d] has aggregate %d, children sum up to %d",
			ErrCorruptTree, k, left, right, t.nodes[k].aggregate, want)
	}
	if err := t.checkNode(leftChild(k), left, mid); err != nil {
		return err
	}
	return t.checkNode(rightChild(k), mid+1, right)
}
