package cardinality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peb/peb/backend"
	"github.com/go-peb/peb/cardinality"
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/z"
)

func TestAssertWeightedAtMostRejectsOverCap(t *testing.T) {
	b := backend.New()
	x, y := b.Lit(), b.Lit()
	cardinality.AssertWeightedAtMost(b, []z.Lit{x, y}, []int{5, 5}, 6)
	b.Assume(x, y)
	require.Equal(t, inter.Unsat, b.Solve(0))
}

func TestAssertWeightedAtMostAdmitsExactlyAtCap(t *testing.T) {
	b := backend.New()
	x, y := b.Lit(), b.Lit()
	cardinality.AssertWeightedAtMost(b, []z.Lit{x, y}, []int{5, 5}, 5)
	b.Assume(x)
	require.Equal(t, inter.Sat, b.Solve(0))
	require.True(t, b.Value(x))
}

func TestAssertWeightedAtMostIsNoOpWhenTotalWithinCap(t *testing.T) {
	b := backend.New()
	x, y := b.Lit(), b.Lit()
	cardinality.AssertWeightedAtMost(b, []z.Lit{x, y}, []int{2, 2}, 10)
	b.Assume(x, y)
	require.Equal(t, inter.Sat, b.Solve(0))
}

func TestAssertWeightedAtMostPanicsOnMismatchedLengths(t *testing.T) {
	b := backend.New()
	require.Panics(t, func() {
		cardinality.AssertWeightedAtMost(b, []z.Lit{b.Lit()}, []int{1, 2}, 1)
	})
}

func TestAssertWeightedAtMostNegativeCapIsUnsat(t *testing.T) {
	b := backend.New()
	x := b.Lit()
	cardinality.AssertWeightedAtMost(b, []z.Lit{x}, []int{1}, -1)
	require.Equal(t, inter.Unsat, b.Solve(0))
}
