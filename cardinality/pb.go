package cardinality

import "github.com/go-peb/peb/z"

// AssertWeightedAtMost asserts that the weighted sum of true literals in
// ms (weights in the parallel slice ws) does not exceed cap. It compiles
// to a sequential weight-counter (a generalization of the Sinz sequential
// unary counter to non-unit weights, as used by pseudo-boolean-to-CNF
// translators such as MiniSat+): register variables reg[i][j] mean "the
// weighted sum of the first i literals is at least j", built with a
// one-directional (Horn) implication sufficient to make the closing unit
// clause ¬reg[n][cap+1] forbid every assignment whose true sum exceeds
// cap.
//
// AssertWeightedAtMost panics if len(ms) != len(ws).
func AssertWeightedAtMost(va LitAdder, ms []z.Lit, ws []int, cap int) {
	if len(ms) != len(ws) {
		panic("cardinality: mismatched literal/weight lengths")
	}
	if cap < 0 {
		// The weighted sum of any assignment is nonnegative, so a negative
		// cap can never be met: assert the empty clause.
		va.Add(z.LitNull)
		return
	}
	if len(ms) == 0 {
		return
	}
	total := 0
	for _, w := range ws {
		total += w
	}
	if total <= cap {
		return // constraint trivially holds regardless of assignment
	}
	limit := cap + 1

	prev := make(map[int]z.Lit) // registers for i-1, keyed by threshold j
	prefix := 0
	for i, m := range ms {
		w := ws[i]
		prefix += w
		hi := limit
		if prefix < hi {
			hi = prefix
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

			// reg <- x_i alone clears the threshold.
			if j <= w {
				va.Add(m.Not())
				va.Add(reg)
				va.Add(z.LitNull)
				continue
			}

			// reg <- x_i together with reaching (j-w) via the first i-1.
			if r, ok := prev[j-w]; ok {
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
