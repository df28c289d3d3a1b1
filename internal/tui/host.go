package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/numberstepper/internal/stepper"
)

// field adapts a textinput to stepper.Field. Focus changes made through
// it are reported to subscribers before the call returns.
type field struct {
	input    textinput.Model
	editable bool
	root     *screen

	focus  stepper.Emitter[bool]
	detach stepper.Emitter[struct{}]
}

func newField(root *screen, width int) *field {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "0"
	input.CharLimit = stepper.MaxInputLength
	input.Width = width
	// Pasted text must go through the digit filter in update.
	input.KeyMap.Paste.SetEnabled(false)
	return &field{input: input, editable: true, root: root}
}

func (f *field) Text() string { return f.input.Value() }

func (f *field) SetText(text string) {
	f.input.SetValue(text)
	f.input.CursorEnd()
}

func (f *field) SetEditable(editable bool) {
	f.editable = editable
	if !editable {
		f.Blur()
	}
}

func (f *field) Focused() bool { return f.input.Focused() }

func (f *field) Root() stepper.Root { return f.root }

// Focus gives the field input focus. Read-only fields refuse it.
func (f *field) Focus() tea.Cmd {
	if !f.editable || f.input.Focused() {
		return nil
	}
	cmd := f.input.Focus()
	f.input.CursorEnd()
	f.focus.Emit(true)
	return cmd
}

func (f *field) Blur() {
	if !f.input.Focused() {
		return
	}
	f.input.Blur()
	f.focus.Emit(false)
}

func (f *field) OnFocusChange(fn func(focused bool)) stepper.Subscription {
	return f.focus.Subscribe(fn)
}

func (f *field) OnDetach(fn func()) stepper.Subscription {
	return f.detach.Subscribe(func(struct{}) { fn() })
}

// update forwards an editing key to the textinput. Rune input is reduced
// to digits.
func (f *field) update(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes {
		digits := digitsOnly(msg.Runes)
		if len(digits) == 0 {
			return nil
		}
		msg.Runes = digits
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func digitsOnly(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return out
}

// button adapts a rendered label to stepper.Button. Disabled buttons
// ignore presses.
type button struct {
	label   string
	enabled bool
	press   stepper.Emitter[struct{}]
}

func (b *button) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *button) OnPress(fn func()) stepper.Subscription {
	return b.press.Subscribe(func(struct{}) { fn() })
}

// Press activates the button and reports whether it was enabled.
func (b *button) Press() bool {
	if !b.enabled {
		return false
	}
	b.press.Emit(struct{}{})
	return true
}

// screen is the terminal window seen as a display root. Soft keyboards on
// terminal hosts shrink the window height, so the visible frame bottom is
// the current height and the root bottom is the tallest height seen since
// the width last changed.
type screen struct {
	width   int
	height  int
	tallest int
	density float64

	layout stepper.Emitter[struct{}]
}

func newScreen(density float64) *screen {
	return &screen{density: density}
}

// resize records a new window size and dispatches a layout signal.
func (s *screen) resize(width, height int) {
	if width != s.width {
		s.tallest = 0
	}
	s.width = width
	s.height = height
	if height > s.tallest {
		s.tallest = height
	}
	s.layout.Emit(struct{}{})
}

func (s *screen) OnLayout(fn func()) stepper.Subscription {
	return s.layout.Subscribe(func(struct{}) { fn() })
}

func (s *screen) RootBottom() int         { return s.tallest }
func (s *screen) VisibleFrameBottom() int { return s.height }
func (s *screen) Density() float64        { return s.density }

// keyboardRows is the number of rows the window must lose before a soft
// keyboard counts as shown.
func (s *screen) keyboardRows() int {
	return int(stepper.KeyboardThreshold*s.density) + 1
}
