// Tally TUI — an on-screen calculator for the terminal.
//
// Usage:
//
//	tally-tui [flags]
//
// Flags:
//
//	--no-mouse    Keyboard-only mode; keypad buttons are not clickable
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tallycalc/tally/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	noMouse := flag.Bool("no-mouse", false, "Disable mouse support")
	flag.Parse()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !*noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.NewModel(), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
