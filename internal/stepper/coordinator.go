package stepper

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/numberstepper/internal/logging"
)

// Coordinator turns field, button and keyboard events into controller
// calls. Typed text is committed only when the field loses focus or the
// keyboard hides; button presses step from the pending text.
type Coordinator struct {
	controller *Controller
	field      Field
	watcher    *KeyboardWatcher
	subs       Subscriptions
	errs       Emitter[error]
	closed     bool
}

// Attach subscribes a coordinator to the field and both buttons.
func Attach(controller *Controller, field Field, decrement, increment Button) *Coordinator {
	c := &Coordinator{
		controller: controller,
		field:      field,
	}
	c.watcher = NewKeyboardWatcher(func() { c.report(c.SyncValue()) })

	c.subs.Add(decrement.OnPress(func() { c.report(c.Decrement()) }))
	c.subs.Add(increment.OnPress(func() { c.report(c.Increment()) }))
	c.subs.Add(field.OnFocusChange(c.focusChanged))
	c.subs.Add(field.OnDetach(c.detached))

	return c
}

// New builds a controller and its coordinator over the given host widgets.
func New(field Field, decrement, increment Button) (*Controller, *Coordinator) {
	controller := NewController(field, decrement, increment)
	return controller, Attach(controller, field, decrement, increment)
}

// Controller returns the controller the coordinator drives.
func (c *Coordinator) Controller() *Controller {
	return c.controller
}

// OnError registers fn for commit errors raised by host events: button
// presses, focus loss and keyboard hides. Direct calls return their
// errors instead.
func (c *Coordinator) OnError(fn func(error)) Subscription {
	return c.errs.Subscribe(fn)
}

// Watcher returns the keyboard watcher.
func (c *Coordinator) Watcher() *KeyboardWatcher {
	return c.watcher
}

// SyncValue commits the pending text.
func (c *Coordinator) SyncValue() error {
	value, err := c.pending()
	if err != nil {
		return err
	}
	c.controller.SetValue(value, true)
	return nil
}

// Decrement commits the pending text minus one step.
func (c *Coordinator) Decrement() error {
	return c.stepBy(-c.controller.Step())
}

// Increment commits the pending text plus one step.
func (c *Coordinator) Increment() error {
	return c.stepBy(c.controller.Step())
}

// Close releases every subscription and stops the keyboard watcher.
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.watcher.Unregister()
	c.subs.Dispose()
}

func (c *Coordinator) stepBy(delta float64) error {
	base, err := c.pending()
	if err != nil {
		return err
	}
	c.controller.SetValue(base+delta, true)
	return nil
}

func (c *Coordinator) focusChanged(focused bool) {
	if focused {
		c.watcher.Register(c.field.Root())
		return
	}
	c.report(c.SyncValue())
	c.watcher.Unregister()
}

func (c *Coordinator) report(err error) {
	if err != nil {
		c.errs.Emit(err)
	}
}

func (c *Coordinator) detached() {
	c.watcher.Unregister()
}

// pending parses the field text. Empty text is zero.
func (c *Coordinator) pending() (float64, error) {
	text := strings.TrimSpace(c.field.Text())
	if text == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		logging.Warn("Pending text is not a number",
			zap.String("text", text),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to parse pending text %q: %w", text, err)
	}
	return value, nil
}
