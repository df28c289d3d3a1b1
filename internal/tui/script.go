package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Headless window used by scripts before any keyboard op.
const (
	scriptWidth  = 80
	scriptHeight = 40
)

// Script operations understood by Apply:
//
//	inc, dec          press a button
//	focus, blur       move input focus to or from the field
//	clear             erase the pending text
//	type=<text>       type into the focused field
//	keyboard=show     shrink the window as a soft keyboard would
//	keyboard=hide     restore the window height
//	set=<number>      set the value programmatically
//	detach            tear the stepper down
//
// RunScript feeds each operation to the model through Update, so scripts
// exercise the same paths as a terminal session.
func RunScript(m *Model, ops []string) error {
	m.Update(tea.WindowSizeMsg{Width: scriptWidth, Height: scriptHeight})
	for i, op := range ops {
		if err := m.Apply(op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op, err)
		}
	}
	return nil
}

// Apply runs a single script operation.
func (m *Model) Apply(op string) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(op), "=")

	switch name {
	case "inc":
		m.Update(runeKey('+'))
	case "dec":
		m.Update(runeKey('-'))
	case "focus":
		if !m.controller.Editable() {
			return fmt.Errorf("field is read-only")
		}
		if !m.field.Focused() {
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		}
	case "blur":
		if m.field.Focused() {
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		}
	case "clear":
		if !m.field.Focused() {
			return fmt.Errorf("field is not focused")
		}
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	case "type":
		if !m.field.Focused() {
			return fmt.Errorf("field is not focused")
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(arg)})
	case "keyboard":
		switch arg {
		case "show":
			height := m.screen.tallest - m.screen.keyboardRows()
			m.Update(tea.WindowSizeMsg{Width: m.screen.width, Height: height})
		case "hide":
			m.Update(tea.WindowSizeMsg{Width: m.screen.width, Height: m.screen.tallest})
		default:
			return fmt.Errorf("keyboard wants show or hide, got %q", arg)
		}
	case "set":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid number %q: value must be finite", arg)
		}
		m.controller.Set(v)
	case "detach":
		m.Detach()
	default:
		return fmt.Errorf("unknown operation %q", name)
	}
	return nil
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
