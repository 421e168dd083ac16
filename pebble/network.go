// Package pebble implements the reversible pebbling solver: given an
// acyclic combinational logic network and a pebble budget, it searches for
// a schedule of compute/uncompute actions on gate nodes that computes
// every primary output while never exceeding the budget and leaving every
// non-output gate cleared.
//
// The search is a SAT encoding (Encoder) driven by an iterative-deepening
// horizon search (HorizonDriver) wrapped in an outer pebble-budget search
// (Controller). None of the three know about a concrete SAT solver
// or a concrete network representation beyond the capability interfaces
// declared in this file and in inter.S.
package pebble

// NodeID identifies a node of a logic network: a primary input, an
// optional constant, or a gate. Networks are free to use whatever
// underlying identifiers they like elsewhere; NodeID is the pebbling
// core's own view of node identity.
type NodeID int

// Network is the capability set the pebbling encoder demands of a logic
// network. It never inspects gate function (AND vs XOR): the encoder is
// purely topological, per the design notes in the specification this
// package implements.
type Network interface {
	// NumPrimaryInputs returns the number of primary input nodes, occupying
	// ids [1, NumPrimaryInputs()].
	NumPrimaryInputs() int

	// FirstGateID returns the smallest node id that names a gate. Gate ids
	// form the contiguous range [FirstGateID(), FirstGateID()+NumGates()).
	FirstGateID() NodeID

	// NumGates returns the number of gate nodes, G.
	NumGates() int

	// Fanins returns the ordered fan-in node ids of gate id. The result is
	// empty for a primary input or constant.
	Fanins(id NodeID) []NodeID

	// IsPIOrConst reports whether id names a primary input or a constant
	// (a node that is always available and imposes no dependency
	// constraint on the nodes that consume it).
	IsPIOrConst(id NodeID) bool

	// PrimaryOutputs returns the node ids that must be pebbled at the
	// final step of a schedule.
	PrimaryOutputs() []NodeID

	// ForEachGate calls f once for every gate id, in a stable order.
	ForEachGate(f func(NodeID))

	// Weight optionally returns a positive integer weight for a gate node.
	// ok is false when the network exposes no weights at all, in which
	// case the pebbling core treats every action as weight 1 but never
	// asserts the I6 weight-cap constraint.
	Weight(id NodeID) (int, bool)
}

// ActionKind distinguishes a compute (clear -> pebbled) action from an
// uncompute (pebbled -> clear) action.
type ActionKind int

const (
	Compute ActionKind = iota
	Uncompute
)

func (k ActionKind) String() string {
	if k == Uncompute {
		return "uncompute"
	}
	return "compute"
}

// Action is one flip of a gate node's pebble state.
type Action struct {
	Node NodeID
	Kind ActionKind
}

// ActionSequence is an ordered schedule of actions. Within any contiguous
// run of actions sharing the same source time step, every Uncompute
// precedes every Compute; the relative order within either half of a step
// is unspecified.
type ActionSequence []Action
