package stepper

// Field is the editable text surface between the two buttons.
//
// Implementations restrict input to digits with a length of at most
// MaxInputLength characters, so Text always parses as a number or is empty.
type Field interface {
	// Text returns the pending, uncommitted text.
	Text() string
	// SetText replaces the displayed text.
	SetText(text string)
	// SetEditable allows or forbids focusing and typing.
	SetEditable(editable bool)
	// Focused reports whether the field holds input focus.
	Focused() bool
	// Blur drops focus. Focus-change handlers run before Blur returns.
	Blur()
	// Root returns the display root the field is drawn in.
	Root() Root
	// OnFocusChange subscribes to focus gain (true) and loss (false).
	OnFocusChange(fn func(focused bool)) Subscription
	// OnDetach subscribes to removal of the field from its display.
	OnDetach(fn func()) Subscription
}

// Button is one of the two step buttons.
type Button interface {
	SetEnabled(enabled bool)
	OnPress(fn func()) Subscription
}

// Root is the top-level display the keyboard watcher observes.
type Root interface {
	// OnLayout subscribes to layout changes of the root.
	OnLayout(fn func()) Subscription
	// RootBottom is the bottom edge of the root in device units.
	RootBottom() int
	// VisibleFrameBottom is the bottom edge of the part of the root not
	// covered by an on-screen keyboard.
	VisibleFrameBottom() int
	// Density is the number of device units per logical unit.
	Density() float64
}

// MaxInputLength is the longest text a Field accepts from the user.
const MaxInputLength = 6
