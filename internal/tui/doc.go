// Package tui hosts a number stepper in a Bubble Tea program.
//
// The package adapts Bubble Tea to the collaborator interfaces of package
// stepper:
//   - a bubbles/textinput restricted to digits becomes the stepper.Field
//   - two rendered labels become the decrement and increment stepper.Button
//   - the terminal window becomes the stepper.Root watched for soft keyboards
//
// # Layout
//
//	Number Stepper
//	 −      42      +
//	value changed to 42
//	-/↓ decrement • +/↑ increment • enter edit • y copy • q quit
//
// The stepper sits on the second row so mouse clicks can be hit-tested
// against the two buttons and the field.
//
// # Soft Keyboards
//
// On terminal hosts such as Termux the on-screen keyboard shrinks the
// window. The screen adapter reports the tallest height seen as the root
// bottom and the current height as the visible frame, so hiding the
// keyboard commits the typed text even though the field keeps focus.
//
// # Usage Example
//
//	m := tui.NewModel(opts)
//	if _, err := tea.NewProgram(m, tea.WithMouseCellMotion()).Run(); err != nil {
//	    return err
//	}
//	fmt.Println(m.Controller().Value())
//
// RunScript drives the same model without a terminal.
package tui
