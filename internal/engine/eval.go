package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidExpression is the single error kind the evaluator reports.
// It covers unparseable operands, malformed chains, and zero divisors;
// callers render it as the display token "Error.".
var ErrInvalidExpression = errors.New("invalid expression")

// Evaluate reduces a chained expression strictly left to right.
//
// There is no operator precedence: "2 + 3 * 4" is 20, not 14. The buffer
// is lexed into alternating operands and operators, the first operand
// seeds the accumulator, and each (operator, operand) pair folds into it
// via Calculate.
//
// Percent is syntactically binary but semantically unary: it divides the
// accumulator by 100 and discards the operand to its right, if any. It is
// therefore also the only operator allowed to end an expression.
func Evaluate(buffer string) (float64, error) {
	toks, err := lex(buffer)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}
	if toks[0].kind != lexNumber {
		return 0, fmt.Errorf("%w: expression must start with a number", ErrInvalidExpression)
	}

	acc := toks[0].num
	i := 1
	for i < len(toks) {
		t := toks[i]
		if t.kind != lexOperator {
			return 0, fmt.Errorf("%w: expected operator", ErrInvalidExpression)
		}

		if t.op == OpPercent {
			acc /= 100
			i++
			if i < len(toks) && toks[i].kind == lexNumber {
				i++ // percent ignores its right operand
			}
			continue
		}

		if i+1 >= len(toks) || toks[i+1].kind != lexNumber {
			return 0, fmt.Errorf("%w: operator %q has no right operand",
				ErrInvalidExpression, t.op.String())
		}
		acc, err = Calculate(acc, t.op, toks[i+1].num)
		if err != nil {
			return 0, err
		}
		i += 2
	}

	// Keep NaN/Inf from leaking into the display.
	if math.IsNaN(acc) || math.IsInf(acc, 0) {
		return 0, fmt.Errorf("%w: result is not finite", ErrInvalidExpression)
	}
	return acc, nil
}

// Calculate applies one binary operation. Percent ignores b.
func Calculate(a float64, op Op, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrInvalidExpression)
		}
		return a / b, nil
	case OpPercent:
		return a / 100, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidExpression, op.String())
}
