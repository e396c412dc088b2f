package engine

import (
	"strings"

	"github.com/tallycalc/tally/pkg/numfmt"
)

const (
	// Initial is the buffer the calculator starts with and returns to on clear.
	Initial = "0"

	// ErrorDisplay is the single user-visible error token. Any non-control
	// input from this state starts a fresh entry.
	ErrorDisplay = "Error."
)

// Apply consumes one input token and returns the next display buffer.
// It is a pure function of (buffer, token); rendering the returned buffer
// is the caller's concern.
//
// Transition rules, in priority order:
//
//  1. equals     — evaluate and display the formatted result
//  2. clear      — reset to "0"
//  3. from "0" or "Error." any digit, operator, or dot starts a new entry
//  4. operator   — replace a trailing operator, or evaluate-then-chain
//  5. backspace  — drop the last character, resetting to "0" when emptied
//  6. dot        — append only once per operand segment
//  7. digit      — append
func Apply(buffer string, tok Token) string {
	switch tok.Kind {
	case TokenEquals:
		return evalToDisplay(buffer)
	case TokenClear:
		return Initial
	}

	if buffer == Initial || buffer == ErrorDisplay {
		return freshEntry(buffer, tok)
	}

	switch tok.Kind {
	case TokenOp:
		return applyOperator(buffer, tok.Op)
	case TokenBackspace:
		if next := buffer[:len(buffer)-1]; next != "" {
			return next
		}
		return Initial
	case TokenDecimal:
		seg := lastOperand(buffer)
		if seg == "" || strings.Contains(seg, ".") {
			return buffer
		}
		return buffer + "."
	case TokenDigit:
		return buffer + string(tok.Digit)
	}
	return buffer
}

// freshEntry starts a new entry from the initial or error state.
func freshEntry(buffer string, tok Token) string {
	switch tok.Kind {
	case TokenDigit:
		return string(tok.Digit)
	case TokenOp:
		return tok.Op.String()
	case TokenDecimal:
		return "."
	case TokenBackspace:
		if buffer == ErrorDisplay {
			return Initial
		}
		return buffer // backspace on "0" is a no-op
	}
	return buffer
}

// applyOperator implements left-to-right chaining: pressing an operator
// after a complete operand evaluates everything so far and appends the
// operator, so the display always shows "result op ". Pressing a second
// operator in a row replaces the first instead of appending.
func applyOperator(buffer string, op Op) string {
	trimmed := strings.TrimRight(buffer, " ")
	if trimmed != "" {
		if _, ok := OpFromRune(rune(trimmed[len(trimmed)-1])); ok {
			return trimmed[:len(trimmed)-1] + op.String() + " "
		}
	}

	n, err := Evaluate(buffer)
	if err != nil {
		return ErrorDisplay
	}
	return numfmt.Format(n) + " " + op.String() + " "
}

func evalToDisplay(buffer string) string {
	n, err := Evaluate(buffer)
	if err != nil {
		return ErrorDisplay
	}
	return numfmt.Format(n)
}

// lastOperand returns the operand segment after the last operator,
// or the whole buffer when no operator is present.
func lastOperand(buffer string) string {
	seg := buffer
	if i := strings.LastIndexAny(buffer, "+-*/%"); i >= 0 {
		seg = buffer[i+1:]
	}
	return strings.TrimSpace(seg)
}
