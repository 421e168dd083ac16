package cardinality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peb/peb/backend"
	"github.com/go-peb/peb/cardinality"
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/z"
)

// maxSatisfiableK builds a fresh backend for each k from 0 upward, asserts
// AssertAtMost(ms, k), assumes every literal of ms true, and returns the
// smallest k at which that all-true assignment is satisfiable, which is
// enough to characterize the cap.
func maxSatisfiableK(t *testing.T, build func() (inter.S, []z.Lit)) int {
	t.Helper()
	for k := 0; ; k++ {
		b, ms := build()
		cardinality.AssertAtMost(b, ms, k)
		for _, m := range ms {
			b.Assume(m)
		}
		if b.Solve(0) == inter.Sat {
			return k
		}
		if k > len(ms) {
			t.Fatalf("cardinality never satisfiable")
		}
	}
}

func TestAssertAtMostForcesAllFalseWhenKIsZero(t *testing.T) {
	b := backend.New()
	x, y := b.Lit(), b.Lit()
	cardinality.AssertAtMost(b, []z.Lit{x, y}, 0)
	require.Equal(t, inter.Sat, b.Solve(0))
	require.False(t, b.Value(x))
	require.False(t, b.Value(y))
}

func TestAssertAtMostIsNoOpWhenKCoversAll(t *testing.T) {
	b := backend.New()
	x, y := b.Lit(), b.Lit()
	cardinality.AssertAtMost(b, []z.Lit{x, y}, 5)
	b.Assume(x, y)
	require.Equal(t, inter.Sat, b.Solve(0))
	require.True(t, b.Value(x))
	require.True(t, b.Value(y))
}

func TestAssertAtMostRejectsTooManyTrue(t *testing.T) {
	b := backend.New()
	x, y, z2 := b.Lit(), b.Lit(), b.Lit()
	ms := []z.Lit{x, y, z2}
	cardinality.AssertAtMost(b, ms, 2)
	b.Assume(x, y, z2)
	require.Equal(t, inter.Unsat, b.Solve(0))
}

func TestAssertAtMostAdmitsExactlyK(t *testing.T) {
	got := maxSatisfiableK(t, func() (inter.S, []z.Lit) {
		b := backend.New()
		x, y, w := b.Lit(), b.Lit(), b.Lit()
		return b, []z.Lit{x, y, w}
	})
	require.Equal(t, 3, got)
}
