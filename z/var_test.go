package z

import (
	"fmt"
	"testing"
)

func TestVarLitRoundTrip(t *testing.T) {
	v := Var(33)
	pos := v.Pos()
	neg := v.Neg()
	if pos.Sign() != 1 {
		t.Errorf("wrong sign for positive lit: %d", pos.Sign())
	}
	if neg.Sign() != -1 {
		t.Errorf("wrong sign for negative lit: %d", neg.Sign())
	}
	if pos.Not() != neg {
		t.Errorf("pos/neg are not negations of each other")
	}
	if pos.Var() != v || neg.Var() != v {
		t.Errorf("generated literals do not share the same variable")
	}
	if fmt.Sprintf("%s", v) != fmt.Sprintf("v%d", uint32(v)) {
		t.Errorf("Var.String format mismatch")
	}
}
