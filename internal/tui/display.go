package tui

import (
	"github.com/tallycalc/tally/internal/engine"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight  = 1
	displayHeight = 3 // 1 content row + border
)

// renderDisplay draws the readout box above the keypad: the current
// buffer, right-aligned, tail-truncated when the expression outgrows
// the box.
func renderDisplay(m *Model) string {
	// Box matches the keypad width; padding eats two more columns.
	contentW := keypadWidth - 4

	text := truncateLeft(m.buffer, contentW)
	style := displayTextStyle
	if m.buffer == engine.ErrorDisplay {
		style = displayErrorStyle
	}

	return displayBoxStyle.
		Width(keypadWidth - 2).
		Align(lipgloss.Right).
		Render(style.Render(text))
}
