package engine

import (
	"errors"
	"testing"
)

// TestLexAlternation verifies the basic number/operator token stream.
func TestLexAlternation(t *testing.T) {
	toks, err := lex("5 + 3.5 * 2")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(toks))
	}

	wantKinds := []lexKind{lexNumber, lexOperator, lexNumber, lexOperator, lexNumber}
	for i, k := range wantKinds {
		if toks[i].kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].kind, k)
		}
	}
	if toks[0].num != 5 || toks[2].num != 3.5 || toks[4].num != 2 {
		t.Errorf("operands = %v %v %v, want 5 3.5 2", toks[0].num, toks[2].num, toks[4].num)
	}
	if toks[1].op != OpAdd || toks[3].op != OpMul {
		t.Errorf("operators = %q %q, want + *", toks[1].op.String(), toks[3].op.String())
	}
}

// TestLexUnaryMinus verifies that a leading minus, or a minus directly
// after an operator, attaches to the following operand.
func TestLexUnaryMinus(t *testing.T) {
	cases := []struct {
		expr  string
		count int
		first float64
	}{
		{"-5", 1, -5},
		{"- 5", 1, -5},
		{"-5 + 2", 3, -5},
		{"-.5", 1, -0.5},
	}

	for _, c := range cases {
		toks, err := lex(c.expr)
		if err != nil {
			t.Errorf("lex(%q) failed: %v", c.expr, err)
			continue
		}
		if len(toks) != c.count {
			t.Errorf("lex(%q) = %d tokens, want %d", c.expr, len(toks), c.count)
			continue
		}
		if toks[0].kind != lexNumber || toks[0].num != c.first {
			t.Errorf("lex(%q) first token = %+v, want number %v", c.expr, toks[0], c.first)
		}
	}
}

// TestLexBinaryMinusAfterNumber verifies a minus after an operand stays binary.
func TestLexBinaryMinusAfterNumber(t *testing.T) {
	toks, err := lex("5 - -2")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	if toks[1].kind != lexOperator || toks[1].op != OpSub {
		t.Errorf("middle token = %+v, want operator -", toks[1])
	}
	if toks[2].num != -2 {
		t.Errorf("last operand = %v, want -2", toks[2].num)
	}
}

// TestLexRejectsGarbage verifies unknown characters and malformed operands fail.
func TestLexRejectsGarbage(t *testing.T) {
	for _, expr := range []string{"x", "5 + x", "5..2", "Error."} {
		if _, err := lex(expr); err == nil {
			t.Errorf("lex(%q) succeeded, want error", expr)
		} else if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("lex(%q) error = %v, want ErrInvalidExpression", expr, err)
		}
	}
}
