package pebble

import (
	"fmt"

	"github.com/go-peb/peb/cardinality"
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/z"
)

// stepVars holds the two variable bundles the encoder allocates for one
// time step: s[i] is "node i is pebbled at this step", a[i] is "node i was
// flipped between the previous step and this one".
type stepVars struct {
	s []z.Lit
	a []z.Lit
}

// Encoder is the pebble SAT encoder from the specification: it owns a
// variable grid indexed by (time step, gate index), grows it one step at a
// time, and turns a satisfying assignment at an assumed horizon into an
// ActionSequence.
//
// An Encoder is single-use: construct one per (network, bound) pair, call
// Init once, then AddStep/Solve/ExtractResult in the pattern the
// HorizonDriver drives. It is not safe for concurrent use.
type Encoder struct {
	net     Network
	backend inter.S

	bound          int // P; 0 means unbounded
	conflictBudget int // passed through to backend.Solve
	weightCap      int // W; 0 means disabled

	firstGate NodeID
	numGates  int
	poSet     map[NodeID]bool
	weights   []int // per gate index; nil unless the network exposes weights
	haveWeight bool

	steps []stepVars // steps[k] for k in [0, K]
	K     int

	initDone bool
}

// NewEncoder constructs an encoder over net with pebble bound P (0 =
// unbounded), an optional per-solve conflict budget (0 = unbounded), and
// an optional total weight cap W (0 = disabled).
func NewEncoder(net Network, backend inter.S, bound, conflictBudget, weightCap int) *Encoder {
	firstGate := net.FirstGateID()
	numGates := net.NumGates()

	poSet := make(map[NodeID]bool)
	for _, po := range net.PrimaryOutputs() {
		poSet[po] = true
	}

	var weights []int
	haveWeight := false
	if numGates > 0 {
		if _, ok := net.Weight(firstGate); ok {
			haveWeight = true
			weights = make([]int, numGates)
			net.ForEachGate(func(id NodeID) {
				w, _ := net.Weight(id)
				weights[id-firstGate] = w
			})
		}
	}

	return &Encoder{
		net:            net,
		backend:        backend,
		bound:          bound,
		conflictBudget: conflictBudget,
		weightCap:      weightCap,
		firstGate:      firstGate,
		numGates:       numGates,
		poSet:          poSet,
		weights:        weights,
		haveWeight:     haveWeight,
	}
}

func (e *Encoder) gateIndex(id NodeID) int {
	return int(id - e.firstGate)
}

func (e *Encoder) gateID(i int) NodeID {
	return e.firstGate + NodeID(i)
}

func (e *Encoder) allocStep() stepVars {
	sv := stepVars{
		s: make([]z.Lit, e.numGates),
		a: make([]z.Lit, e.numGates),
	}
	for i := 0; i < e.numGates; i++ {
		sv.s[i] = e.backend.Lit()
		sv.a[i] = e.backend.Lit()
	}
	return sv
}

// Init asserts I1: at step 0 every node is cleared and no action has
// occurred. It must be called exactly once, before the first AddStep.
func (e *Encoder) Init() {
	if e.initDone {
		panic("pebble: Init called more than once")
	}
	sv := e.allocStep()
	e.steps = append(e.steps, sv)
	for i := 0; i < e.numGates; i++ {
		e.unit(sv.s[i].Not())
		e.unit(sv.a[i].Not())
	}
	e.initDone = true
}

func (e *Encoder) unit(m z.Lit) {
	e.backend.Add(m)
	e.backend.Add(z.LitNull)
}

// AddStep extends the horizon by one step, K -> K+1, and asserts the
// permanent transition clauses (I2, I3) plus, if a pebble bound is set,
// the per-step budget cardinality (I4). AddStep must follow Init.
func (e *Encoder) AddStep() {
	if !e.initDone {
		panic("pebble: AddStep called before Init")
	}
	prev := e.steps[e.K]
	cur := e.allocStep()
	e.K++
	e.steps = append(e.steps, cur)

	for i := 0; i < e.numGates; i++ {
		sPrev, sCur, a := prev.s[i], cur.s[i], cur.a[i]

		// I2: a <-> (sPrev XOR sCur), the unique 4-clause CNF encoding of
		// the biconditional over the two given half-implications.
		e.backend.Add(sPrev)
		e.backend.Add(sCur)
		e.backend.Add(a.Not())
		e.backend.Add(z.LitNull)

		e.backend.Add(sPrev)
		e.backend.Add(sCur.Not())
		e.backend.Add(a)
		e.backend.Add(z.LitNull)

		e.backend.Add(sPrev.Not())
		e.backend.Add(sCur)
		e.backend.Add(a)
		e.backend.Add(z.LitNull)

		e.backend.Add(sPrev.Not())
		e.backend.Add(sCur.Not())
		e.backend.Add(a.Not())
		e.backend.Add(z.LitNull)

		// I3: a -> (sPrev[c] and sCur[c]) for every gate-valued fan-in c.
		// a already carries the meaning "sPrev != sCur" by I2, so using it
		// directly as the antecedent avoids re-deriving the flip literal.
		gid := e.gateID(i)
		for _, c := range e.net.Fanins(gid) {
			if e.net.IsPIOrConst(c) {
				continue
			}
			cj := e.gateIndex(c)
			e.backend.Add(a.Not())
			e.backend.Add(prev.s[cj])
			e.backend.Add(z.LitNull)

			e.backend.Add(a.Not())
			e.backend.Add(cur.s[cj])
			e.backend.Add(z.LitNull)
		}
	}

	if e.bound > 0 {
		cardinality.AssertAtMost(e.backend, cur.s, e.bound)
	}
}

// Solve emits the retractable I5 finality assumptions (and, if a weight
// cap is active, I6) at the current horizon K and invokes the backend.
//
// On Unsat the assumptions (and, for I6, the guarded clauses backing it)
// are simply never asserted again; nothing needs to be undone in the
// backend, matching the push/pop contract via an assumption-vector solve
// instead of an explicit backtrack stack. On Sat or Unknown the caller
// must not call AddStep again for this encoder: ExtractResult depends on
// the assumptions that produced a Sat result still describing the model
// being read.
func (e *Encoder) Solve() inter.Result {
	if !e.initDone {
		panic("pebble: Solve called before Init")
	}
	cur := e.steps[e.K]
	assumps := make([]z.Lit, 0, e.numGates+1)
	for i := 0; i < e.numGates; i++ {
		gid := e.gateID(i)
		if e.poSet[gid] {
			assumps = append(assumps, cur.s[i])
		} else {
			assumps = append(assumps, cur.s[i].Not())
		}
	}

	if e.weightCap > 0 && e.haveWeight {
		sel := e.backend.Lit()
		guarded := &guardedAdder{inner: e.backend, guard: sel}
		lits, weights := e.actionLitsAndWeights()
		cardinality.AssertWeightedAtMost(guarded, lits, weights, e.weightCap)
		assumps = append(assumps, sel)
	}

	e.backend.Assume(assumps...)
	return e.backend.Solve(e.conflictBudget)
}

// actionLitsAndWeights collects every a[k][i] variable allocated so far
// (k in [1, K]) together with the weight of gate i, for the I6 sum.
func (e *Encoder) actionLitsAndWeights() ([]z.Lit, []int) {
	lits := make([]z.Lit, 0, e.K*e.numGates)
	weights := make([]int, 0, e.K*e.numGates)
	for k := 1; k <= e.K; k++ {
		sv := e.steps[k]
		for i := 0; i < e.numGates; i++ {
			lits = append(lits, sv.a[i])
			weights = append(weights, e.weights[i])
		}
	}
	return lits, weights
}

// ExtractResult is valid only immediately after a Sat Solve. It reads the
// model and linearizes it into an ActionSequence per the specification:
// within a step, all uncomputes precede all computes; ordering within
// either half of a step is unspecified.
func (e *Encoder) ExtractResult() (ActionSequence, error) {
	var seq ActionSequence
	for k := 1; k <= e.K; k++ {
		prev, cur := e.steps[k-1], e.steps[k]
		var computes, uncomputes []Action
		for i := 0; i < e.numGates; i++ {
			if !e.backend.Value(cur.a[i]) {
				continue
			}
			sPrev := e.backend.Value(prev.s[i])
			sCur := e.backend.Value(cur.s[i])
			if sPrev == sCur {
				return nil, fmt.Errorf("pebble: inconsistent model at step %d, node %d: a is true but s did not flip", k, e.gateID(i))
			}
			act := Action{Node: e.gateID(i)}
			if sCur {
				act.Kind = Compute
				computes = append(computes, act)
			} else {
				act.Kind = Uncompute
				uncomputes = append(uncomputes, act)
			}
		}
		seq = append(seq, uncomputes...)
		seq = append(seq, computes...)
	}
	return seq, nil
}

// guardedAdder prefixes every clause it forwards with guard.Not(), so the
// clause is vacuously satisfied whenever guard is not itself assumed true.
// It lets the encoder emit ordinary permanent clauses to the backend for a
// constraint block (I6) while keeping the block logically retractable:
// simply never assume guard again.
type guardedAdder struct {
	inner   inter.S
	guard   z.Lit
	pending bool
}

func (g *guardedAdder) Lit() z.Lit {
	return g.inner.Lit()
}

func (g *guardedAdder) Add(m z.Lit) {
	if !g.pending {
		g.inner.Add(g.guard.Not())
		g.pending = true
	}
	g.inner.Add(m)
	if m == z.LitNull {
		g.pending = false
	}
}
