package tui

import (
	"github.com/tallycalc/tally/internal/engine"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Grid definition
// ────────────────────────────────────────────────────────────

// Cell geometry: content plus rounded border. The mouse hit boxes in
// buttonAt are derived from these same constants, so rendering and
// hit-testing cannot drift apart.
const (
	btnCellW = 7 // 5 content columns + border
	btnCellH = 3 // 1 content row + border

	keypadCols  = 4
	keypadWidth = keypadCols * btnCellW
)

// button is one keypad cell: a label and the input token it emits.
type button struct {
	label string
	tok   engine.Token
}

var keypadRows = [][]button{
	{
		{"C", engine.Clear()},
		{"←", engine.Backspace()},
		{"%", engine.Operator(engine.OpPercent)},
		{"÷", engine.Operator(engine.OpDiv)},
	},
	{
		{"7", engine.Digit('7')},
		{"8", engine.Digit('8')},
		{"9", engine.Digit('9')},
		{"×", engine.Operator(engine.OpMul)},
	},
	{
		{"4", engine.Digit('4')},
		{"5", engine.Digit('5')},
		{"6", engine.Digit('6')},
		{"-", engine.Operator(engine.OpSub)},
	},
	{
		{"1", engine.Digit('1')},
		{"2", engine.Digit('2')},
		{"3", engine.Digit('3')},
		{"+", engine.Operator(engine.OpAdd)},
	},
	{
		{"0", engine.Digit('0')},
		{".", engine.Decimal()},
		{"=", engine.Equals()},
	},
}

var keypadHeight = len(keypadRows) * btnCellH

// ────────────────────────────────────────────────────────────
// Rendering
// ────────────────────────────────────────────────────────────

// renderKeypad draws the button grid with the current selection highlighted.
func renderKeypad(m *Model) string {
	rows := make([]string, 0, len(keypadRows))
	for r, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for c, b := range row {
			selected := r == m.selRow && c == m.effCol()
			style := buttonStyle(b, selected)
			cells = append(cells,
				style.Width(btnCellW-2).Height(btnCellH-2).Render(b.label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// buttonStyle picks the style for a button by the token it emits.
func buttonStyle(b button, selected bool) lipgloss.Style {
	if selected {
		return btnSelectedStyle
	}
	switch b.tok.Kind {
	case engine.TokenClear, engine.TokenBackspace:
		return btnControlStyle
	case engine.TokenOp:
		return btnOpStyle
	case engine.TokenEquals:
		return btnEqualsStyle
	default:
		return btnDigitStyle
	}
}

// ────────────────────────────────────────────────────────────
// Hit testing
// ────────────────────────────────────────────────────────────

// buttonAt maps terminal cell coordinates to the keypad button under
// them. The keypad is anchored at the left edge, below the header and
// the display box.
func buttonAt(x, y int) (engine.Token, bool) {
	y -= headerHeight + displayHeight
	if x < 0 || y < 0 {
		return engine.Token{}, false
	}

	row := y / btnCellH
	col := x / btnCellW
	if row >= len(keypadRows) || col >= len(keypadRows[row]) {
		return engine.Token{}, false
	}
	return keypadRows[row][col].tok, true
}
