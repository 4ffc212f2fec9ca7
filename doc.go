/*
Package segtree implements a segment tree with lazy propagation over a
sequence of int64 values.

Segment Trees

A segment tree stores a sequence of numbers in the leaves of a complete binary
tree. Every inner node holds the aggregate (here: the sum) of the leaves below
it. This makes it possible to read, write, add a constant to a whole range, and
sum up a range of elements, each in O(log n) time.

The tree is stored implicitly in a flat slice: node i has children 2i+1 and
2i+2, and the leaves occupy the second half of the slice. For four elements
the layout is

	[:::::::::::::::0::::::::::::::::::]
	[::::::1:::::::] [::::::::2::::::::]
	[::3::] [::4:::] [:::5:::] [:::6:::]  <- node indices
	 {0}     {1}      {2}      {3}        <- element indices

The number of leaves is rounded up to the next power of two; surplus leaves
hold 0 and are called padding.

Lazy Propagation

Adding a delta to a range does not touch every element. Instead the delta is
parked in the topmost nodes which are completely covered by the range ("pending"
value, applying to every element below the node). Ancestors of these nodes are
re-aggregated on the way back up, so they always reflect the update. Reads
collect the pending values on their path.

A Tree is not safe for concurrent use. Clients sharing a tree between
goroutines have to guard every operation, reads included, with one lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the segtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an element index is not
// addressable, i.e. is negative or not less than the tree's capacity, and
// for ranges with first > last.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrIllegalArguments is flagged whenever input to be turned into a tree
// is malformed.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrCorruptTree is flagged by Check if the node array violates a structural
// invariant.
const ErrCorruptTree = TreeError("corrupt tree")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
