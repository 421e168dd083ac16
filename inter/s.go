// Package inter names the capability interfaces the pebbling core demands
// of a SAT backend (see the encoder in package pebble) without naming any
// concrete solver. Concrete backends live in package backend.
package inter

import "github.com/go-peb/peb/z"

// Result is the three-valued outcome of a bounded solve.
type Result int

const (
	// Unknown means the backend gave up under its conflict budget before
	// determining satisfiability either way.
	Unknown Result = 0
	// Sat means the backend found a satisfying assignment.
	Sat Result = 1
	// Unsat means the backend proved the current formula, together with
	// any active assumptions, has no satisfying assignment.
	Unsat Result = -1
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Adder encapsulates something to which clauses can be added as sequences
// of literals terminated by z.LitNull.
//
// Add should not be called while assumptions from a Solve are still
// pending extraction; doing so is undefined.
type Adder interface {
	Add(m z.Lit)
}

// MaxVar reports the largest variable allocated so far.
type MaxVar interface {
	MaxVar() z.Var
}

// Liter allocates a fresh variable and returns its positive literal.
type Liter interface {
	Lit() z.Lit
}

// Model gives read access to a satisfying assignment from the most recent
// Sat result.
type Model interface {
	Value(m z.Lit) bool
}

// Assumable lets a caller make a batch of literals true for exactly the
// next Solve call. A conforming backend consumes and forgets assumptions
// once Solve returns, mirroring the "solve() consumes and forgets"
// contract common to incremental SAT APIs: retracting an assumption block
// on UNSAT never requires undoing backend state, only omitting it from the
// next Assume call.
type Assumable interface {
	Assume(m ...z.Lit)
}

// Solvable runs the decision procedure, optionally bounded by a conflict
// budget. A budget of 0 means unbounded. Solve returns Sat, Unsat, or
// Unknown (the budget was exhausted before a verdict).
type Solvable interface {
	Solve(conflictBudget int) Result
}

// S is the full capability set required by the pebbling encoder from a SAT
// backend: allocate variables, add clauses, add assumptions, solve under a
// budget, and read back a model.
type S interface {
	MaxVar
	Liter
	Adder
	Assumable
	Solvable
	Model
}

// CardAdder adds an at-most-k cardinality constraint over ms. Backends may
// implement it natively. Package cardinality does not implement CardAdder;
// its function cardinality.AssertAtMost compiles the same constraint to
// ordinary clauses over any Adder that is also a Liter.
type CardAdder interface {
	AddAtMost(ms []z.Lit, k int)
}
