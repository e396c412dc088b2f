package tui

import (
	"strings"

	"github.com/tallycalc/tally/internal/engine"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Terminals narrower than this collapse to the keypad-only layout.
const compactWidth = keypadWidth + 26

// tapeEntry is one completed calculation on the session tape.
type tapeEntry struct {
	expr   string
	result string
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the tally TUI. The calculator
// state proper is the single display buffer; everything else is
// presentation (keypad selection, session tape, help footer).
type Model struct {
	buffer string
	tape   []tapeEntry

	// UI state
	selRow int
	selCol int
	width  int
	height int

	keys keyMap
	help help.Model
}

// NewModel creates a TUI model with the buffer at its initial state.
func NewModel() Model {
	h := help.New()
	h.Styles.ShortKey = hintKeyStyle
	h.Styles.ShortDesc = hintDescStyle
	h.Styles.ShortSeparator = hintDescStyle
	h.Styles.FullKey = hintKeyStyle
	h.Styles.FullDesc = hintDescStyle
	h.Styles.FullSeparator = hintDescStyle

	return Model{
		buffer: engine.Initial,
		keys:   defaultKeyMap(),
		help:   h,
	}
}

// Buffer returns the current display buffer.
func (m Model) Buffer() string { return m.buffer }

func (m Model) Init() tea.Cmd {
	return nil
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if tok, ok := buttonAt(msg.X, msg.Y); ok {
				return m.press(tok), nil
			}
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input: navigation and app keys first,
// everything else through the calculator key mapping.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.selRow = clamp(m.selRow-1, 0, len(keypadRows)-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.selRow = clamp(m.selRow+1, 0, len(keypadRows)-1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.selCol = clamp(m.effCol()-1, 0, len(keypadRows[m.selRow])-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.selCol = clamp(m.effCol()+1, 0, len(keypadRows[m.selRow])-1)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		return m.press(keypadRows[m.selRow][m.effCol()].tok), nil
	}

	if tok, ok := engine.FromKey(msg.String()); ok {
		return m.press(tok), nil
	}
	return m, nil
}

// effCol clamps the selection column to the current row, which matters
// on the short bottom row.
func (m Model) effCol() int {
	return clamp(m.selCol, 0, len(keypadRows[m.selRow])-1)
}

// press feeds one token through the reducer. Completed calculations
// (equals presses that change the buffer) are appended to the tape.
func (m Model) press(tok engine.Token) Model {
	prev := strings.TrimRight(m.buffer, " ")
	m.buffer = engine.Apply(m.buffer, tok)

	if tok.Kind == engine.TokenEquals && prev != engine.Initial && m.buffer != prev {
		m.tape = append(m.tape, tapeEntry{expr: prev, result: m.buffer})
	}
	return m
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderDisplay(&m),
		renderKeypad(&m),
	)

	body := left
	if m.width >= compactWidth {
		tapeW := m.width - keypadWidth
		if tapeW > 48 {
			tapeW = 48
		}
		tape := renderTapePanel(&m, tapeW, displayHeight+keypadHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, tape)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
