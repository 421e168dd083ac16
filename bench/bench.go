// Package bench times pebble.Controller runs over a batch of networks, the
// in-process analogue of the gini benchmark harness's per-instance run
// record: instead of spawning a subprocess per CNF instance and scraping
// its result files from disk, an InstRun here just wraps a direct call
// into package pebble and captures wall-clock duration and outcome.
package bench

import (
	"time"

	"github.com/go-peb/peb/pebble"
)

// InstRun is the outcome of running a Controller to completion over one
// network instance.
type InstRun struct {
	Name    string
	Result  pebble.Status
	Bound   int
	Actions int
	Dur     time.Duration
	Error   error
}

// Run executes c.Run and returns an InstRun capturing its wall-clock
// duration alongside the result.
func Run(name string, c *pebble.Controller) InstRun {
	start := time.Now()
	seq, status, err := c.Run()
	return InstRun{
		Name:    name,
		Result:  status,
		Bound:   c.StartBound,
		Actions: len(seq),
		Dur:     time.Since(start),
		Error:   err,
	}
}

// RunAll runs every named controller and returns one InstRun per entry, in
// Go's unspecified map iteration order. Controllers are run sequentially:
// each owns a SAT backend that is
// not safe to drive from more than one goroutine, and the pebbling
// specification treats solving as synchronous by design.
func RunAll(cs map[string]*pebble.Controller) []InstRun {
	runs := make([]InstRun, 0, len(cs))
	for name, c := range cs {
		runs = append(runs, Run(name, c))
	}
	return runs
}
