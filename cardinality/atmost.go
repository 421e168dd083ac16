// Package cardinality compiles at-most-k and weighted at-most-W
// constraints down to ordinary clauses, so that any SAT backend offering
// inter.Adder and inter.Liter can carry them without native support. The
// package provides plain functions; no type here implements inter.CardAdder.
package cardinality

import (
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/z"
)

// LitAdder is the minimal capability a cardinality builder needs: fresh
// variables and clause insertion.
type LitAdder interface {
	inter.Adder
	inter.Liter
}

// AssertAtMost adds clauses forcing at most k of ms to be true. If k is 0
// or negative, all of ms are forced false; if k >= len(ms), the
// constraint is trivially satisfied and nothing is added.
//
// This is the unit-weight case of the sequential-counter technique
// AssertWeightedAtMost uses: register variables reg[i][j] mean "at least
// j of the first i literals are true", carried forward one step at a time
// by a one-directional (Horn) implication, closed off by a unit clause
// forbidding reg[n][k+1].
//
// Reference: Carsten Sinz, "Towards an Optimal CNF Encoding of Boolean
// Cardinality Constraints", CP 2005.
func AssertAtMost(va LitAdder, ms []z.Lit, k int) {
	if k >= len(ms) {
		return
	}
	if len(ms) == 0 {
		return
	}
	if k <= 0 {
		for _, m := range ms {
			va.Add(m.Not())
			va.Add(z.LitNull)
		}
		return
	}
	limit := k + 1

	prev := make(map[int]z.Lit) // registers for i-1, keyed by threshold j
	for i, m := range ms {
		hi := i + 1
		if hi > limit {
			hi = limit
		}
		cur := make(map[int]z.Lit, hi)
		for j := 1; j <= hi; j++ {
			reg := va.Lit()
			cur[j] = reg

			// reg <- carried over from i-1 at the same threshold.
			if r, ok := prev[j]; ok {
				va.Add(r.Not())
				va.Add(reg)
				va.Add(z.LitNull)
			}

			// reg <- x_i alone reaches threshold 1.
			if j == 1 {
				va.Add(m.Not())
				va.Add(reg)
				va.Add(z.LitNull)
				continue
			}

			// reg <- x_i together with reaching j-1 via the first i-1.
			if r, ok := prev[j-1]; ok {
				va.Add(m.Not())
				va.Add(r.Not())
				va.Add(reg)
				va.Add(z.LitNull)
			}
		}
		prev = cur
	}

	if reg, ok := prev[limit]; ok {
		va.Add(reg.Not())
		va.Add(z.LitNull)
	}
}
