package tui

import (
	"fmt"
	"strings"

	"github.com/tallycalc/tally/internal/engine"
)

// renderTapePanel draws the session history beside the keypad: one
// "expression = result" row per completed calculation, newest at the
// bottom, scrolled so the latest entries stay visible.
func renderTapePanel(m *Model, width, height int) string {
	title := panelTitleStyle.Render("Tape")
	if len(m.tape) > 0 {
		title += tapeCountStyle.Render(fmt.Sprintf("  %d", len(m.tape)))
	}

	if len(m.tape) == 0 {
		content := title + "\n\n" +
			emptyStateStyle.Render("Completed calculations\nappear here.")
		return panelStyle.Width(width).Height(height).Render(content)
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := len(m.tape) - visible
	if start < 0 {
		start = 0
	}

	exprW := width - 12
	if exprW < 8 {
		exprW = 8
	}

	for _, e := range m.tape[start:] {
		result := tapeResultStyle.Render(e.result)
		if e.result == engine.ErrorDisplay {
			result = tapeErrorStyle.Render(e.result)
		}
		lines = append(lines,
			tapeExprStyle.Render(truncate(e.expr, exprW))+
				tapeExprStyle.Render(" = ")+result)
	}

	return panelStyle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}
