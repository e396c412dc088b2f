// Package tui implements the tally terminal user interface.
//
// The calculator surface is built with Charmbracelet's BubbleTea,
// Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	model.go    — root model, message routing, Init/Update
//	theme.go    — centralized color + style definitions
//	keys.go     — bubbles/key bindings and the help footer
//	header.go   — top bar and status/hint footer
//	display.go  — the right-aligned expression/result readout
//	keypad.go   — button grid, selection, and mouse hit boxes
//	tape.go     — session history of completed calculations
//	helpers.go  — truncation and clamping utilities
package tui
