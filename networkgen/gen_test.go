package networkgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peb/peb/network"
	"github.com/go-peb/peb/networkgen"
)

func TestChainIsALinearDependencyList(t *testing.T) {
	net := networkgen.Chain(4)
	require.Equal(t, 3, net.NumGates())
	require.Equal(t, []network.NodeID{net.FirstGateID() + 2}, net.PrimaryOutputs())
}

func TestChainPanicsBelowTwoInputs(t *testing.T) {
	require.Panics(t, func() { networkgen.Chain(1) })
}

func TestDiamondHasThreeGatesAndOnePO(t *testing.T) {
	net := networkgen.Diamond()
	require.Equal(t, 3, net.NumGates())
	require.Len(t, net.PrimaryOutputs(), 1)
}

func TestDisjointPairKeepsTwoDistinctGates(t *testing.T) {
	net := networkgen.DisjointPair()
	require.Equal(t, 2, net.NumGates())
	require.Len(t, net.PrimaryOutputs(), 1)
	require.Equal(t, net.FirstGateID()+1, net.PrimaryOutputs()[0])
}

func TestRandomDAGIsAcyclicAndInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	net := networkgen.RandomDAG(rng, 4, 10, 3)
	require.Equal(t, 10, net.NumGates())
	require.LessOrEqual(t, len(net.PrimaryOutputs()), 3)

	net.ForEachGate(func(id network.NodeID) {
		for _, fi := range net.Fanins(id) {
			require.Less(t, fi, id, "every fan-in must precede its gate")
		}
	})
}

func TestRandomDAGPanicsOnEmptyInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Panics(t, func() { networkgen.RandomDAG(rng, 0, 1, 1) })
	require.Panics(t, func() { networkgen.RandomDAG(rng, 1, 0, 1) })
}
