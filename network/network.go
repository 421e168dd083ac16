// Package network provides a concrete, immutable combinational logic
// network: primary inputs, an optional constant, and AND/XOR gates wired
// together into a DAG. It is a reference implementation of the
// pebble.Network capability contract (see package pebble), the same way a
// downstream circuit emitter or file-format reader would build one.
//
// Node identity mirrors the scheme used by AND-inverter-graph tooling:
// primary inputs occupy a contiguous low range starting at 1, an optional
// zero constant occupies the next id, and gates occupy a contiguous range
// starting at an offset fixed at construction time. Unlike AIG formats,
// edges carry no complementation: the builder takes plain node ids, since
// the pebbling core reasons purely about which node produces which node's
// input, never about polarity.
package network

import "github.com/go-peb/peb/pebble"

// NodeID identifies a node: a primary input, the optional constant, or a
// gate. Node ids are strictly positive and contiguous within each
// category. It is an alias of pebble.NodeID so that *Network satisfies
// pebble.Network directly.
type NodeID = pebble.NodeID

var _ pebble.Network = (*Network)(nil)

// Op distinguishes the two combinational primitives a gate may compute.
type Op int

const (
	And Op = iota
	Xor
)

func (o Op) String() string {
	if o == Xor {
		return "xor"
	}
	return "and"
}

type gate struct {
	op     Op
	fanins [2]NodeID
	weight int
	hasW   bool
}

// Network is a builder and read model for a combinational DAG over AND and
// XOR gates. The zero value is not usable; construct with New or
// NewWithZeroConstant.
type Network struct {
	numPIs     int
	zeroConst  NodeID // 0 if this network has no explicit zero constant
	firstGate  NodeID
	gates      []gate // gates[i] is the node with id firstGate+i
	pos        []NodeID
	haveWeight bool
}

// New creates a network with numPIs primary inputs and no explicit zero
// constant. Gates are numbered starting at numPIs+1, the offset used by
// AND-inverter-graph-style formats without a reserved constant node.
func New(numPIs int) *Network {
	return newNetwork(numPIs, false)
}

// NewWithZeroConstant creates a network with numPIs primary inputs and an
// explicit constant-zero node at id numPIs+1. Gates are numbered starting
// at numPIs+2, the offset used by k-LUT-style formats that reserve an id
// for a literal zero.
func NewWithZeroConstant(numPIs int) *Network {
	return newNetwork(numPIs, true)
}

func newNetwork(numPIs int, withZero bool) *Network {
	n := &Network{
		numPIs: numPIs,
	}
	first := NodeID(numPIs + 1)
	if withZero {
		n.zeroConst = first
		first++
	}
	n.firstGate = first
	return n
}

// NumPrimaryInputs implements pebble.Network.
func (n *Network) NumPrimaryInputs() int {
	return n.numPIs
}

// FirstGateID implements pebble.Network.
func (n *Network) FirstGateID() NodeID {
	return n.firstGate
}

// NumGates implements pebble.Network.
func (n *Network) NumGates() int {
	return len(n.gates)
}

// PrimaryInput returns the node id of the i'th primary input, 0-based.
func (n *Network) PrimaryInput(i int) NodeID {
	if i < 0 || i >= n.numPIs {
		panic("network: primary input index out of range")
	}
	return NodeID(i + 1)
}

// ZeroConstant returns the constant-zero node id and whether this network
// reserves one.
func (n *Network) ZeroConstant() (NodeID, bool) {
	return n.zeroConst, n.zeroConst != 0
}

// IsPIOrConst implements pebble.Network: true for any node id below FirstGateID.
func (n *Network) IsPIOrConst(id NodeID) bool {
	return id >= 1 && id < n.firstGate
}

// IsGate reports whether id names a gate in this network.
func (n *Network) IsGate(id NodeID) bool {
	return id >= n.firstGate && int(id-n.firstGate) < len(n.gates)
}

func (n *Network) mustGate(id NodeID) *gate {
	if !n.IsGate(id) {
		panic("network: not a gate id")
	}
	return &n.gates[id-n.firstGate]
}

// Fanins implements pebble.Network: the ordered inputs to a gate. Fanins of
// a PI or constant are empty.
func (n *Network) Fanins(id NodeID) []NodeID {
	if n.IsPIOrConst(id) {
		return nil
	}
	g := n.mustGate(id)
	return []NodeID{g.fanins[0], g.fanins[1]}
}

// GateOp reports the combinational operator of a gate.
func (n *Network) GateOp(id NodeID) Op {
	return n.mustGate(id).op
}

// AddAnd adds a new AND gate over the existing nodes a, b and returns its
// id. a and b must already be valid node ids in n (a PI, the constant, or
// an earlier gate); gate ids are issued in construction order, so the
// result is always in topological order.
func (n *Network) AddAnd(a, b NodeID) NodeID {
	return n.addGate(And, a, b)
}

// AddXor is the XOR analogue of AddAnd.
func (n *Network) AddXor(a, b NodeID) NodeID {
	return n.addGate(Xor, a, b)
}

func (n *Network) addGate(op Op, a, b NodeID) NodeID {
	id := n.firstGate + NodeID(len(n.gates))
	n.gates = append(n.gates, gate{op: op, fanins: [2]NodeID{a, b}})
	return id
}

// SetWeight assigns a positive integer weight to a gate node, for use with
// the pebbling encoder's total action weight bound. Once any gate carries
// a weight, Weight reports ok=true for every gate: one never explicitly
// weighted defaults to weight 1 rather than being reported as missing.
func (n *Network) SetWeight(id NodeID, w int) {
	if w <= 0 {
		panic("network: weight must be positive")
	}
	g := n.mustGate(id)
	g.weight = w
	g.hasW = true
	n.haveWeight = true
}

// Weight implements pebble.Network's optional weight lookup.
func (n *Network) Weight(id NodeID) (int, bool) {
	if !n.haveWeight || !n.IsGate(id) {
		return 0, false
	}
	g := n.mustGate(id)
	if !g.hasW {
		return 1, true
	}
	return g.weight, true
}

// AddPrimaryOutput marks id as a primary output target. The same node may
// be marked more than once; duplicates are harmless but wasteful.
func (n *Network) AddPrimaryOutput(id NodeID) {
	n.pos = append(n.pos, id)
}

// PrimaryOutputs implements pebble.Network.
func (n *Network) PrimaryOutputs() []NodeID {
	out := make([]NodeID, len(n.pos))
	copy(out, n.pos)
	return out
}

// ForEachGate implements pebble.Network's gate enumeration by calling f for
// every gate id in topological (construction) order.
func (n *Network) ForEachGate(f func(NodeID)) {
	for i := range n.gates {
		f(n.firstGate + NodeID(i))
	}
}

// Eval evaluates the network given a truth assignment for every primary
// input (0-based, len == NumPrimaryInputs), returning the value of every
// gate keyed by NodeID. It is used by tests to check a produced
// ActionSequence's semantics, not by the pebbling core itself.
func (n *Network) Eval(pis []bool) map[NodeID]bool {
	if len(pis) != n.numPIs {
		panic("network: wrong number of primary input values")
	}
	vals := make(map[NodeID]bool, n.numPIs+len(n.gates)+1)
	for i, v := range pis {
		vals[NodeID(i+1)] = v
	}
	if z, ok := n.ZeroConstant(); ok {
		vals[z] = false
	}
	n.ForEachGate(func(id NodeID) {
		g := n.mustGate(id)
		a, b := vals[g.fanins[0]], vals[g.fanins[1]]
		if g.op == Xor {
			vals[id] = a != b
		} else {
			vals[id] = a && b
		}
	})
	return vals
}
