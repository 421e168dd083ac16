// Package networkgen builds small synthetic logic networks for exercising
// the pebbling core, the way package gen in the SAT-solver ecosystem
// builds synthetic CNF instances (pigeonhole, coloring, ...) for
// exercising a solver. Every generator here is deterministic given its
// random source so property tests can replay a failure.
package networkgen

import (
	"math/rand"

	"github.com/go-peb/peb/network"
)

// Chain builds a network with n primary inputs feeding a linear chain of
// n-1 AND gates: g_1 = AND(pi_1, pi_2), g_2 = AND(g_1, pi_3), ....
// The last gate is the sole primary output. n must be >= 2.
func Chain(n int) *network.Network {
	if n < 2 {
		panic("networkgen: Chain needs at least 2 primary inputs")
	}
	net := network.New(n)
	acc := net.PrimaryInput(0)
	for i := 1; i < n; i++ {
		acc = net.AddAnd(acc, net.PrimaryInput(i))
	}
	net.AddPrimaryOutput(acc)
	return net
}

// Diamond builds the canonical 2-input diamond: PIs {1,2}, an AND and an
// XOR of both, and an AND of those two, which is the sole primary output.
func Diamond() *network.Network {
	net := network.New(2)
	a := net.AddAnd(net.PrimaryInput(0), net.PrimaryInput(1))
	x := net.AddXor(net.PrimaryInput(0), net.PrimaryInput(1))
	out := net.AddAnd(a, x)
	net.AddPrimaryOutput(out)
	return net
}

// DisjointPair builds two structurally identical AND gates over the same
// two primary inputs but marks only the second as a primary output,
// exercising the "leave a computed-but-unneeded node cleared" edge case.
func DisjointPair() *network.Network {
	net := network.New(2)
	_ = net.AddAnd(net.PrimaryInput(0), net.PrimaryInput(1))
	second := net.AddAnd(net.PrimaryInput(0), net.PrimaryInput(1))
	net.AddPrimaryOutput(second)
	return net
}

// RandomDAG builds a random network of numPIs primary inputs and numGates
// gates, each gate choosing two fan-ins uniformly from the nodes that
// precede it (primary inputs or earlier gates) and a uniformly random
// operator. numOutputs primary outputs are chosen from the gate range
// (deduplicated). The network is always acyclic because every fan-in
// index is strictly less than the gate being built.
func RandomDAG(rng *rand.Rand, numPIs, numGates, numOutputs int) *network.Network {
	if numPIs < 1 || numGates < 1 {
		panic("networkgen: RandomDAG needs at least one PI and one gate")
	}
	net := network.New(numPIs)
	pool := make([]network.NodeID, numPIs)
	for i := 0; i < numPIs; i++ {
		pool[i] = net.PrimaryInput(i)
	}
	for i := 0; i < numGates; i++ {
		a := pool[rng.Intn(len(pool))]
		b := pool[rng.Intn(len(pool))]
		var id network.NodeID
		if rng.Intn(2) == 0 {
			id = net.AddAnd(a, b)
		} else {
			id = net.AddXor(a, b)
		}
		pool = append(pool, id)
	}
	seen := make(map[network.NodeID]bool, numOutputs)
	firstGate := net.FirstGateID()
	added := 0
	for added < numOutputs && added < numGates {
		id := firstGate + network.NodeID(rng.Intn(numGates))
		if seen[id] {
			continue
		}
		seen[id] = true
		net.AddPrimaryOutput(id)
		added++
	}
	return net
}
