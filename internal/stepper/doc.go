// Package stepper implements the value logic of a number stepper: a numeric
// field flanked by a decrement and an increment button.
//
// The package knows nothing about rendering. The host toolkit is reached
// through three small interfaces, Field, Button and Root, and every event
// subscription returns a Subscription handle.
//
// # Components
//
//   - Controller: owns the committed value, the bounds and the step.
//     Candidates are truncated to a multiple of the step, clamped to the
//     bounds, written back to the field, and committed when they differ
//     from the current value.
//   - Coordinator: commits the pending field text when the field loses
//     focus or the on-screen keyboard hides, and steps from the pending
//     text when a button is pressed.
//   - KeyboardWatcher: registered on the display root while the field is
//     focused; reports keyboard visible-to-hidden transitions.
//
// # Pending Text vs Committed Value
//
// The field text is a scratch buffer. It only reaches the controller at
// sync points:
//
//	field loses focus       -> SyncValue
//	keyboard hides          -> SyncValue
//	decrement / increment   -> SetValue(pending -/+ step)
//	Controller.Value()      -> blur field, then return
//
// # Usage Example
//
//	controller, coordinator := stepper.New(field, minus, plus)
//	defer coordinator.Close()
//
//	controller.Configure(5, 0, 20, 12) // value is 10
//	controller.OnValueChanged(func(c *stepper.Controller, v float64) {
//	    fmt.Println("value:", v)
//	})
//
// # Threading
//
// All methods must be called from the host's event loop. Nothing in this
// package blocks or locks.
package stepper
