package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	TALLY │ Desk Calculator │ 3 calculations
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("TALLY")
	sep := headerSepStyle.Render(" │ ")

	parts := []string{brand, sep, headerMetaStyle.Render("Desk Calculator")}
	if len(m.tape) > 0 {
		parts = append(parts, sep, headerMetaStyle.Render(
			fmt.Sprintf("%d calculations", len(m.tape))))
	}

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom bar: last result on the left,
// keybinding hints from the help component on the right.
func renderFooter(m *Model) string {
	status := "ready"
	if n := len(m.tape); n > 0 {
		last := m.tape[n-1]
		status = last.expr + " = " + last.result
	}

	left := statusStyle.Render(status)
	right := m.help.View(m.keys)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}
