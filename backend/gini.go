// Package backend adapts concrete SAT solvers to the inter.S capability
// set demanded by the pebbling encoder. The pebbling core in package
// pebble never imports a solver directly; it only sees inter.S.
package backend

import (
	"time"

	giniapi "github.com/go-air/gini"
	giniz "github.com/go-air/gini/z"

	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/z"
)

// GiniBackend wraps a *gini.Gini instance to satisfy inter.S.
//
// gini's Solve exposes no notion of a conflict budget directly: it is
// either run to completion (Solve) or cancelled from another goroutine
// (GoSolve + Try(d)/Stop). We bridge the gap the way gini's own ax package
// bridges a client's conflict/time budget to a running solve: dispatch a
// GoSolve and race it against a deadline derived from the budget, treating
// a timeout as Unknown exactly as an exhausted conflict budget would be.
// The translation is necessarily approximate (conflicts per unit time vary
// with problem difficulty); callers that need exact conflict-count budgets
// should swap in a backend that exposes one natively.
type GiniBackend struct {
	g *giniapi.Gini

	// budgetToDur converts a conflict budget into a wall-clock ceiling.
	// It exists so tests can inject a fast, deterministic clock.
	budgetToDur func(conflictBudget int) time.Duration
}

// New creates a GiniBackend around a fresh gini solver.
func New() *GiniBackend {
	return &GiniBackend{
		g:           giniapi.New(),
		budgetToDur: defaultBudgetToDur,
	}
}

// defaultBudgetToDur assumes a modest ~50k conflicts/sec, a conservative
// figure for the small pebbling instances this encoder produces (a few
// hundred to a few thousand variables per step).
func defaultBudgetToDur(conflictBudget int) time.Duration {
	if conflictBudget <= 0 {
		return 0
	}
	const conflictsPerSecond = 50000
	d := time.Duration(conflictBudget) * time.Second / conflictsPerSecond
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

// SetBudgetClock overrides the conflict-budget-to-duration translation,
// primarily for deterministic tests of the Unknown path.
func (b *GiniBackend) SetBudgetClock(f func(conflictBudget int) time.Duration) {
	b.budgetToDur = f
}

func toGini(m z.Lit) giniz.Lit {
	return giniz.Lit(uint32(m))
}

func fromGini(m giniz.Lit) z.Lit {
	return z.Lit(uint32(m))
}

// MaxVar implements inter.MaxVar.
func (b *GiniBackend) MaxVar() z.Var {
	return z.Var(uint32(b.g.MaxVar()))
}

// Lit implements inter.Liter by delegating to gini's own allocator.
func (b *GiniBackend) Lit() z.Lit {
	return fromGini(b.g.Lit())
}

// Add implements inter.Adder.
func (b *GiniBackend) Add(m z.Lit) {
	b.g.Add(toGini(m))
}

// Assume implements inter.Assumable.
func (b *GiniBackend) Assume(ms ...z.Lit) {
	gs := make([]giniz.Lit, len(ms))
	for i, m := range ms {
		gs[i] = toGini(m)
	}
	b.g.Assume(gs...)
}

// Value implements inter.Model.
func (b *GiniBackend) Value(m z.Lit) bool {
	return b.g.Value(toGini(m))
}

// Solve implements inter.Solvable. conflictBudget == 0 means unbounded.
func (b *GiniBackend) Solve(conflictBudget int) inter.Result {
	if conflictBudget <= 0 {
		return inter.Result(b.g.Solve())
	}
	d := b.budgetToDur(conflictBudget)
	handle := b.g.GoSolve()
	res := handle.Try(d)
	return inter.Result(res)
}
