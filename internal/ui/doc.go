// Package ui holds the shared lipgloss palette, the stepper styles and the
// result boxes printed by the numberstepper CLI after a run.
//
// Result boxes are printed with a Printer:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintSuccess("Stepper closed", []ui.Detail{
//	    {Key: "Value", Value: "10"},
//	})
package ui
