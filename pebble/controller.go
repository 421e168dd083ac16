package pebble

import (
	"fmt"

	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/logger"
)

// Status classifies the outcome of a Controller run.
type Status int

const (
	// Infeasible means no ActionSequence was produced: every inner run
	// hit Unknown under the configured retry policy and no prior Sat
	// result exists to fall back on.
	Infeasible Status = iota
	// Solved means the returned ActionSequence satisfies every invariant
	// for its final (bound, horizon) pair.
	Solved
)

func (s Status) String() string {
	if s == Solved {
		return "solved"
	}
	return "infeasible"
}

// Controller wraps a HorizonDriver in an outer loop that adjusts the
// pebble bound P: on Unknown it may increment P and retry; on Sat it may
// decrement P and retry looking for a tighter bound; otherwise it returns
// the best ActionSequence found so far.
type Controller struct {
	Net Network

	// NewBackend builds a fresh SAT backend for a new Encoder. A fresh
	// backend is required on every outer iteration because the permanent
	// transition and budget clauses asserted for one pebble bound cannot
	// be un-asserted for another.
	NewBackend func() inter.S

	StartBound     int
	KMax           int
	ConflictBudget int
	WeightCap      int

	// IncrementOnFailure and DecrementOnSuccess must not both be true.
	IncrementOnFailure bool
	DecrementOnSuccess bool
}

// Run executes the outer bound-search loop and returns the best
// ActionSequence found together with its Status.
func (c *Controller) Run() (ActionSequence, Status, error) {
	if c.IncrementOnFailure && c.DecrementOnSuccess {
		return nil, Infeasible, fmt.Errorf("pebble: IncrementOnFailure and DecrementOnSuccess must not both be true")
	}

	log := logger.Logger()
	bound := c.StartBound
	var best ActionSequence

	for {
		backend := c.NewBackend()
		enc := NewEncoder(c.Net, backend, bound, c.ConflictBudget, c.WeightCap)
		driver := NewHorizonDriver(enc, c.KMax)
		res, seq, err := driver.Run()
		if err != nil {
			return nil, Infeasible, err
		}
		log.Info().Int("bound", bound).Str("result", res.String()).Msg("outer bound iteration")

		switch res {
		case inter.Unknown:
			if c.IncrementOnFailure {
				bound++
				continue
			}
		case inter.Sat:
			best = seq
			if c.DecrementOnSuccess {
				bound--
				continue
			}
		}

		if best == nil {
			return nil, Infeasible, nil
		}
		return best, Solved, nil
	}
}
