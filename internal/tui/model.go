package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/numberstepper/internal/config"
	"github.com/muurk/numberstepper/internal/logging"
	"github.com/muurk/numberstepper/internal/stepper"
	"github.com/muurk/numberstepper/internal/ui"
)

// Layout of the rendered view, used for mouse hit testing.
const (
	stepperRow = 1  // title is row 0
	fieldCells = 10 // field width between the buttons
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Model is the Bubble Tea model hosting one stepper.
type Model struct {
	Title string

	opts        config.Options
	field       *field
	minus       *button
	plus        *button
	screen      *screen
	controller  *stepper.Controller
	coordinator *stepper.Coordinator

	keys    keyMap
	help    help.Model
	status  string
	changes int
	lastErr error

	detached bool
}

// NewModel builds a stepper from opts. Invalid options fall back to
// their defaults.
func NewModel(opts config.Options) *Model {
	opts = opts.Sanitize()
	scr := newScreen(opts.Density)
	m := &Model{
		Title:  "Number Stepper",
		opts:   opts,
		screen: scr,
		field:  newField(scr, fieldCells-1),
		minus:  &button{label: "−"},
		plus:   &button{label: "+"},
		keys:   newKeyMap(),
		help:   help.New(),
	}

	m.controller, m.coordinator = stepper.New(m.field, m.minus, m.plus)
	m.controller.Configure(opts.Step, opts.MinValue, opts.MaxValue, opts.Value)
	m.controller.OnValueChanged(m.valueChanged)
	m.coordinator.OnError(m.recordErr)
	m.keys.setEditing(false, m.controller.Editable())

	return m
}

// Controller exposes the stepper controller.
func (m *Model) Controller() *stepper.Controller {
	return m.controller
}

// Changes returns how many change notifications the model received.
func (m *Model) Changes() int {
	return m.changes
}

// Err returns the last error reported by a commit or clipboard action.
func (m *Model) Err() error {
	return m.lastErr
}

// Text returns the pending field text.
func (m *Model) Text() string {
	return m.field.Text()
}

// Editing reports whether the field has focus.
func (m *Model) Editing() bool {
	return m.field.Focused()
}

// Detached reports whether Detach has run.
func (m *Model) Detached() bool {
	return m.detached
}

func (m *Model) valueChanged(c *stepper.Controller, value float64) {
	m.changes++
	m.status = "value changed to " + stepper.Format(value)
	logging.Info("Stepper value changed", zap.Float64("value", value))
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.screen.resize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.field.Focused() {
			return m, m.handleEditingKey(msg)
		}
		return m, m.handleKey(msg)
	}

	if m.field.Focused() {
		var cmd tea.Cmd
		m.field.input, cmd = m.field.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Decrement):
		m.press(m.minus)
	case key.Matches(msg, m.keys.Increment):
		m.press(m.plus)
	case key.Matches(msg, m.keys.Edit):
		return m.focus()
	case key.Matches(msg, m.keys.Copy):
		m.copyValue()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.blur()
		return nil
	case key.Matches(msg, m.keys.Decrement):
		m.press(m.minus)
		return nil
	case key.Matches(msg, m.keys.Increment):
		m.press(m.plus)
		return nil
	}
	return m.field.update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	bw := m.opts.ButtonCells()
	switch {
	case msg.Y != stepperRow:
		m.blur()
	case msg.X < bw:
		m.press(m.minus)
	case msg.X < bw+fieldCells:
		return m.focus()
	case msg.X < 2*bw+fieldCells:
		m.press(m.plus)
	default:
		m.blur()
	}
	return nil
}

func (m *Model) press(b *button) {
	if !b.Press() {
		m.status = "limit reached"
	}
}

func (m *Model) focus() tea.Cmd {
	cmd := m.field.Focus()
	m.keys.setEditing(m.field.Focused(), m.controller.Editable())
	return cmd
}

func (m *Model) blur() {
	m.field.Blur()
	m.keys.setEditing(m.field.Focused(), m.controller.Editable())
}

func (m *Model) copyValue() {
	text := stepper.Format(m.controller.Value())
	if err := writeClipboard(text); err != nil {
		logging.Warn("Failed to copy value", zap.Error(err))
		m.recordErr(fmt.Errorf("failed to copy value: %w", err))
		return
	}
	m.status = "copied " + text
}

func (m *Model) recordErr(err error) {
	m.lastErr = err
	m.status = err.Error()
}

func (m *Model) quit() tea.Cmd {
	m.Detach()
	return tea.Quit
}

// Detach commits pending text, detaches the field and releases every
// subscription. It runs once.
func (m *Model) Detach() {
	if m.detached {
		return
	}
	m.controller.Value()
	m.field.detach.Emit(struct{}{})
	m.coordinator.Close()
	m.detached = true
	m.keys.setEditing(false, false)
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(m.renderStepper())
	b.WriteString("\n")
	b.WriteString(ui.StatusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderStepper() string {
	bw := m.opts.ButtonCells()

	var value string
	switch {
	case m.field.Focused():
		value = ui.FieldFocusedStyle.Width(fieldCells).Render(m.field.input.View())
	case !m.controller.Editable():
		value = ui.FieldReadOnlyStyle.Width(fieldCells).Render(m.field.Text())
	default:
		value = ui.FieldStyle.Width(fieldCells).Render(m.field.Text())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton(m.minus, bw),
		value,
		renderButton(m.plus, bw),
	)
}

func renderButton(b *button, width int) string {
	style := ui.ButtonStyle
	if !b.enabled {
		style = ui.ButtonDisabledStyle
	}
	return style.Width(width).Render(b.label)
}
