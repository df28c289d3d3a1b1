package stepper

import "github.com/muurk/numberstepper/internal/logging"

// KeyboardThreshold is the height, in logical units, the visible frame has
// to lose before the on-screen keyboard counts as shown.
const KeyboardThreshold = 100

// KeyboardWatcher tracks on-screen keyboard visibility on a display root.
// It is either unregistered or registered to exactly one root.
type KeyboardWatcher struct {
	root    Root
	layout  Subscription
	visible bool
	hidden  func()
}

// NewKeyboardWatcher returns an unregistered watcher that calls onHidden
// each time the keyboard goes from visible to hidden.
func NewKeyboardWatcher(onHidden func()) *KeyboardWatcher {
	return &KeyboardWatcher{hidden: onHidden}
}

// Register starts observing root, dropping any previous registration.
func (w *KeyboardWatcher) Register(root Root) {
	w.Unregister()
	if root == nil {
		return
	}
	w.root = root
	w.visible = false
	w.layout = root.OnLayout(w.onLayout)
}

// Unregister stops observing. It is a no-op when unregistered.
func (w *KeyboardWatcher) Unregister() {
	if w.root == nil {
		return
	}
	w.layout.Dispose()
	w.layout = nil
	w.root = nil
	w.visible = false
}

// Registered reports whether a root is observed.
func (w *KeyboardWatcher) Registered() bool {
	return w.root != nil
}

// Visible reports the last computed keyboard visibility.
func (w *KeyboardWatcher) Visible() bool {
	return w.visible
}

func (w *KeyboardWatcher) onLayout() {
	root := w.root
	if root == nil {
		return
	}

	threshold := KeyboardThreshold * root.Density()
	rootBottom, frameBottom := root.RootBottom(), root.VisibleFrameBottom()
	visible := float64(rootBottom-frameBottom) > threshold
	if visible == w.visible {
		return
	}

	logging.LogKeyboardTransition(visible, rootBottom, frameBottom, threshold)
	w.visible = visible
	if !visible && w.hidden != nil {
		w.hidden()
	}
}
