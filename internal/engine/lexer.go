package engine

import (
	"fmt"
	"strconv"
)

// lexKind discriminates the two token classes the evaluator consumes.
type lexKind int

const (
	lexNumber lexKind = iota
	lexOperator
)

// lexToken is one element of the lexed expression: either a parsed
// operand or an operator.
type lexToken struct {
	kind lexKind
	num  float64
	op   Op
}

// lex splits a display buffer into alternating number/operator tokens.
//
// Whitespace is skipped. A '-' at the start of the expression or directly
// after an operator is part of the following operand, so buffers holding a
// negative result ("-5") re-parse cleanly when chaining continues.
func lex(buffer string) ([]lexToken, error) {
	var toks []lexToken

	i := 0
	for i < len(buffer) {
		ch := buffer[i]
		if ch == ' ' {
			i++
			continue
		}

		if op, ok := OpFromRune(rune(ch)); ok {
			unary := op == OpSub &&
				(len(toks) == 0 || toks[len(toks)-1].kind == lexOperator)
			if !unary {
				toks = append(toks, lexToken{kind: lexOperator, op: op})
				i++
				continue
			}
		}

		// Operand: optional sign, then a run of digits and dots.
		var lit []byte
		if ch == '-' {
			lit = append(lit, '-')
			i++
			for i < len(buffer) && buffer[i] == ' ' {
				i++
			}
		}
		start := len(lit)
		for i < len(buffer) && (isDigit(buffer[i]) || buffer[i] == '.') {
			lit = append(lit, buffer[i])
			i++
		}
		if len(lit) == start {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidExpression, ch)
		}

		n, err := strconv.ParseFloat(string(lit), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad operand %q", ErrInvalidExpression, string(lit))
		}
		toks = append(toks, lexToken{kind: lexNumber, num: n})
	}

	return toks, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
