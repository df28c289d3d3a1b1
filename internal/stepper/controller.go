package stepper

import (
	"math"
	"strconv"

	"github.com/muurk/numberstepper/internal/logging"
)

// Defaults applied when no configuration is given.
const (
	DefaultStep  = 1.0
	DefaultValue = 0.0
)

// Default bounds cover the whole float64 range.
var (
	DefaultMin = -math.MaxFloat64
	DefaultMax = math.MaxFloat64
)

// State is the committed numeric state of a stepper.
type State struct {
	Value    float64
	Step     float64
	Min      float64
	Max      float64
	Editable bool
}

// ValueChangedFunc observes committed value changes.
type ValueChangedFunc func(c *Controller, value float64)

// Controller owns the value, its bounds and its step. It writes the
// canonical text to the field and the enabled flags to the buttons.
type Controller struct {
	state     State
	field     Field
	decrement Button
	increment Button
	onChanged ValueChangedFunc
}

// NewController creates a controller configured with the defaults.
func NewController(field Field, decrement, increment Button) *Controller {
	c := &Controller{
		field:     field,
		decrement: decrement,
		increment: increment,
	}
	c.Configure(DefaultStep, DefaultMin, DefaultMax, DefaultValue)
	return c
}

// Configure re-initializes the whole state. Bounds are ordered, the step is
// raised to at least 1, and initial is applied without notification.
func (c *Controller) Configure(step, min, max, initial float64) {
	if min == max {
		c.field.SetEditable(false)
		c.state.Min = max
		c.state.Max = max
		c.state.Editable = false
	} else {
		c.field.SetEditable(true)
		c.state.Min = math.Min(min, max)
		c.state.Max = math.Max(min, max)
		c.state.Editable = true
	}

	c.state.Step = math.Max(step, 1.0)
	if c.state.Step != 1.0 {
		c.state.Min = c.normalize(c.state.Min)
		c.state.Max = c.normalize(c.state.Max)
	}

	// NaN compares unequal to every candidate, so the initial value is
	// always applied.
	c.state.Value = math.NaN()
	c.SetValue(initial, false)
}

// OnValueChanged registers the observer; nil removes it.
func (c *Controller) OnValueChanged(fn ValueChangedFunc) {
	c.onChanged = fn
}

// Set commits candidate and notifies the observer.
func (c *Controller) Set(candidate float64) {
	c.SetValue(candidate, true)
}

// SetValue normalizes and clamps candidate, writes it to the field and
// commits it when it differs from the current value.
func (c *Controller) SetValue(candidate float64, notify bool) {
	if candidate == c.state.Value {
		return
	}

	valid := c.clamp(c.normalize(candidate))
	c.field.SetText(Format(valid))
	if valid == c.state.Value {
		return
	}

	previous := c.state.Value
	c.state.Value = valid
	c.decrement.SetEnabled(c.state.Value != c.state.Min)
	c.increment.SetEnabled(c.state.Value != c.state.Max)

	notified := notify && c.onChanged != nil
	logging.LogValueCommitted(previous, valid, notified)
	if notified {
		c.onChanged(c, c.state.Value)
	}
}

// Value returns the committed value. A focused field is blurred first so
// pending text is committed.
func (c *Controller) Value() float64 {
	if c.field.Focused() {
		c.field.Blur()
	}
	return c.state.Value
}

// NotifyValueChanged calls the observer with the current value.
func (c *Controller) NotifyValueChanged() {
	if c.onChanged != nil {
		c.onChanged(c, c.state.Value)
	}
}

// State returns a copy of the committed state without touching focus.
func (c *Controller) State() State {
	return c.state
}

// Step returns the quantization unit.
func (c *Controller) Step() float64 {
	return c.state.Step
}

// Editable reports whether the field accepts typed input.
func (c *Controller) Editable() bool {
	return c.state.Editable
}

// normalize truncates v to a multiple of the step. math.Mod keeps the sign
// of v, so negative values move toward zero.
func (c *Controller) normalize(v float64) float64 {
	return v - math.Mod(v, c.state.Step)
}

func (c *Controller) clamp(v float64) float64 {
	return math.Min(math.Max(v, c.state.Min), c.state.Max)
}

// Format renders a value the way the field displays it.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
