// Package engine implements the calculator core: a pure reducer that
// accumulates input tokens into a display-buffer string, and a small
// left-to-right evaluator for the chained expressions the reducer builds.
//
// The buffer is the only piece of state. It always holds either a chained
// expression of the form "num (op num)*" with single spaces around operators,
// a bare number, or the error token "Error.". The reducer is a pure function
// of (buffer, token), so it can be driven identically from the TUI event
// loop, the CLI REPL, or a test.
package engine

// Op is one of the five binary operator characters.
type Op byte

const (
	OpAdd     Op = '+'
	OpSub     Op = '-'
	OpMul     Op = '*'
	OpDiv     Op = '/'
	OpPercent Op = '%'
)

// String returns the single-character spelling of the operator.
func (o Op) String() string {
	return string(rune(o))
}

// OpFromRune returns the operator for r, if r is an operator character.
func OpFromRune(r rune) (Op, bool) {
	switch r {
	case '+', '-', '*', '/', '%':
		return Op(r), true
	}
	return 0, false
}

// TokenKind discriminates the members of the Token union.
type TokenKind int

const (
	TokenDigit TokenKind = iota
	TokenDecimal
	TokenOp
	TokenEquals
	TokenClear
	TokenBackspace
)

// String returns a short name for the kind, used in test failure output.
func (k TokenKind) String() string {
	switch k {
	case TokenDigit:
		return "digit"
	case TokenDecimal:
		return "decimal"
	case TokenOp:
		return "op"
	case TokenEquals:
		return "equals"
	case TokenClear:
		return "clear"
	case TokenBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

// Token is one atomic unit of user input. Kind selects which payload
// field is meaningful: Digit for TokenDigit, Op for TokenOp.
type Token struct {
	Kind  TokenKind
	Digit byte // '0'..'9', set when Kind == TokenDigit
	Op    Op   // set when Kind == TokenOp
}

// Constructors for the fixed token set.

func Digit(d byte) Token   { return Token{Kind: TokenDigit, Digit: d} }
func Operator(op Op) Token { return Token{Kind: TokenOp, Op: op} }
func Decimal() Token       { return Token{Kind: TokenDecimal} }
func Equals() Token        { return Token{Kind: TokenEquals} }
func Clear() Token         { return Token{Kind: TokenClear} }
func Backspace() Token     { return Token{Kind: TokenBackspace} }

// FromKey maps a key name (as BubbleTea reports it, e.g. "5", "+", "enter")
// to an input token. The second return is false for keys the calculator
// ignores.
//
// Mapping: digits and + - * / % . map directly, enter and = mean equals,
// esc and c mean clear, backspace deletes the last character.
func FromKey(key string) (Token, bool) {
	switch key {
	case "enter", "=":
		return Equals(), true
	case "esc", "c", "C":
		return Clear(), true
	case "backspace":
		return Backspace(), true
	case ".":
		return Decimal(), true
	}

	if len(key) != 1 {
		return Token{}, false
	}
	ch := key[0]
	if ch >= '0' && ch <= '9' {
		return Digit(ch), true
	}
	if op, ok := OpFromRune(rune(ch)); ok {
		return Operator(op), true
	}
	return Token{}, false
}
