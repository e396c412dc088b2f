package tui

import (
	"testing"

	"github.com/tallycalc/tally/internal/engine"

	tea "github.com/charmbracelet/bubbletea"
)

// typeKeys drives the model with a sequence of rune keys.
func typeKeys(m Model, runes ...rune) Model {
	for _, r := range runes {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

// TestUpdateKeyFlow verifies the basic typed flow: digits, an operator,
// and enter-as-equals all reach the reducer.
func TestUpdateKeyFlow(t *testing.T) {
	m := typeKeys(NewModel(), '5', '+', '3')
	if m.Buffer() != "5 + 3" {
		t.Fatalf("buffer = %q, want %q", m.Buffer(), "5 + 3")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.Buffer() != "8" {
		t.Errorf("buffer after enter = %q, want %q", m.Buffer(), "8")
	}
}

// TestUpdateEscClears verifies esc maps to clear, not to quit.
func TestUpdateEscClears(t *testing.T) {
	m := typeKeys(NewModel(), '4', '2')

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if cmd != nil {
		t.Errorf("esc produced a command, want none")
	}
	if m.Buffer() != engine.Initial {
		t.Errorf("buffer after esc = %q, want %q", m.Buffer(), engine.Initial)
	}
}

// TestUpdateBackspace verifies backspace deletes the last character.
func TestUpdateBackspace(t *testing.T) {
	m := typeKeys(NewModel(), '1', '2')
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	if m.Buffer() != "1" {
		t.Errorf("buffer = %q, want %q", m.Buffer(), "1")
	}
}

// TestUpdateTapeRecordsEquals verifies completed calculations land on
// the tape, while a bare equals does not.
func TestUpdateTapeRecordsEquals(t *testing.T) {
	m := typeKeys(NewModel(), '5', '+', '3')
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if len(m.tape) != 1 {
		t.Fatalf("tape length = %d, want 1", len(m.tape))
	}
	if m.tape[0].expr != "5 + 3" || m.tape[0].result != "8" {
		t.Errorf("tape entry = %+v, want 5 + 3 = 8", m.tape[0])
	}

	// Equals on a bare result adds nothing.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if len(m.tape) != 1 {
		t.Errorf("tape length after repeat equals = %d, want 1", len(m.tape))
	}
}

// TestUpdateSpacePressesSelection verifies arrow navigation plus space
// presses the highlighted button. The selection starts on "C"; moving
// down once lands on "7".
func TestUpdateSpacePressesSelection(t *testing.T) {
	m := NewModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	if m.Buffer() != "7" {
		t.Errorf("buffer = %q, want %q", m.Buffer(), "7")
	}
}

// TestUpdateMousePress verifies a left click on a keypad cell presses it.
func TestUpdateMousePress(t *testing.T) {
	m := NewModel()

	// Center of the "9" button: row 1, column 2.
	x := 2*btnCellW + btnCellW/2
	y := headerHeight + displayHeight + 1*btnCellH + btnCellH/2

	next, _ := m.Update(tea.MouseMsg{
		X: x, Y: y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(Model)

	if m.Buffer() != "9" {
		t.Errorf("buffer = %q, want %q", m.Buffer(), "9")
	}
}

// TestUpdateIgnoresUnmappedKeys verifies stray keys leave the buffer alone.
func TestUpdateIgnoresUnmappedKeys(t *testing.T) {
	m := typeKeys(NewModel(), '5', 'x', 'a', '[')
	if m.Buffer() != "5" {
		t.Errorf("buffer = %q, want %q", m.Buffer(), "5")
	}
}

// TestSelectionClampsOnShortRow verifies the cursor stays inside the
// three-button bottom row.
func TestSelectionClampsOnShortRow(t *testing.T) {
	m := NewModel()
	// Move to the rightmost column, then to the bottom row.
	for i := 0; i < 5; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(Model)
	}
	for i := 0; i < 6; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(Model)
	}

	if got := m.effCol(); got != len(keypadRows[m.selRow])-1 {
		t.Errorf("effCol = %d, want %d", got, len(keypadRows[m.selRow])-1)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.Buffer() != engine.Initial {
		// Bottom-right is "=", and equals on "0" keeps "0".
		t.Errorf("buffer = %q, want %q", m.Buffer(), engine.Initial)
	}
}
