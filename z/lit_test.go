package z

import "testing"

func TestDimacsRoundTrip(t *testing.T) {
	for i := 1; i < 100; i++ {
		if Dimacs2Lit(i).Dimacs() != i {
			t.Errorf("dimacs conversion %d", i)
		}
		if Dimacs2Lit(-i).Dimacs() != -i {
			t.Errorf("dimacs conversion of -%d", i)
		}
		if !Dimacs2Lit(i).IsPos() {
			t.Errorf("expected positive literal for %d", i)
		}
		if Dimacs2Lit(-i).IsPos() {
			t.Errorf("expected negative literal for -%d", i)
		}
	}
}
