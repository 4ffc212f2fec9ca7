package segtree

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedProperty -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzRandomizedProperty -fuzztime=10s

// model is a plain slice, kept in sync with a tree by runRandomOps.
type model []int64

func (m model) sum(first, last int) int64 {
	var s int64
	for _, v := range m[first : last+1] {
		s += v
	}
	return s
}

func randomRange(r *rand.Rand, n int) (int, int) {
	first, last := r.Intn(n), r.Intn(n)
	if first > last {
		first, last = last, first
	}
	return first, last
}

func runRandomOps(t *testing.T, r *rand.Rand, n, steps int) {
	t.Helper()
	m := make(model, n)
	for i := range m {
		m[i] = int64(r.Intn(201) - 100)
	}
	tree := New(m...)
	for step := 0; step < steps; step++ {
		switch op := r.Intn(4); op {
		case 0:
			first, last := randomRange(r, n)
			delta := int64(r.Intn(201) - 100)
			tree.Add(first, last, delta)
			for i := first; i <= last; i++ {
				m[i] += delta
			}
		case 1:
			i, v := r.Intn(n), int64(r.Intn(2001)-1000)
			tree.Set(i, v)
			m[i] = v
		case 2:
			first, last := randomRange(r, n)
			if got, want := tree.Sum(first, last), m.sum(first, last); got != want {
				t.Fatalf("step %d: Sum(%d, %d) = %d, expected %d", step, first, last, got, want)
			}
		case 3:
			i := r.Intn(n)
			if got := tree.Get(i); got != m[i] {
				t.Fatalf("step %d: Get(%d) = %d, expected %d", step, i, got, m[i])
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
	if diff := cmp.Diff([]int64(m), tree.Values()); diff != "" {
		t.Fatalf("tree diverged from model (-want +got):\n%s", diff)
	}
	if got, want := tree.Total(), m.sum(0, n-1); got != want {
		t.Fatalf("Total() = %d, expected %d", got, want)
	}
}

func TestRandomizedProperty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 5, 8, 13, 64, 100} {
		runRandomOps(t, r, n, 500)
	}
}

func FuzzRandomizedProperty(f *testing.F) {
	f.Add(int64(1), uint8(8))
	f.Add(int64(42), uint8(1))
	f.Add(int64(7), uint8(33))
	f.Fuzz(func(t *testing.T, seed int64, size uint8) {
		gtrace.CoreTracer = gotestingadapter.New(t)
		teardown := gotestingadapter.RedirectTracing(t)
		defer teardown()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		//
		n := int(size)%128 + 1
		runRandomOps(t, rand.New(rand.NewSource(seed)), n, 200)
	})
}
