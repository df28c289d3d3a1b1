package stepper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardWatcherTransitions(t *testing.T) {
	root := newFakeRoot() // threshold 100 * 2 = 200
	hidden := 0
	w := NewKeyboardWatcher(func() { hidden++ })
	w.Register(root)

	steps := []struct {
		frame   int
		visible bool
		hidden  int
	}{
		{2000, false, 0},
		{1800, false, 0}, // exactly at threshold
		{1799, true, 0},
		{1500, true, 0},
		{2000, false, 1},
		{2000, false, 1},
		{1000, true, 1},
		{1900, false, 2},
	}

	for i, s := range steps {
		root.Resize(s.frame)
		assert.Equal(t, s.visible, w.Visible(), "step %d", i)
		assert.Equal(t, s.hidden, hidden, "step %d", i)
	}
}

func TestKeyboardWatcherRegisterIsIdempotent(t *testing.T) {
	root := newFakeRoot()
	w := NewKeyboardWatcher(nil)

	w.Register(root)
	w.Register(root)

	assert.Equal(t, 1, root.layout.Len())
	assert.True(t, w.Registered())
}

func TestKeyboardWatcherReregisterMovesRoot(t *testing.T) {
	first, second := newFakeRoot(), newFakeRoot()
	w := NewKeyboardWatcher(nil)

	w.Register(first)
	w.Register(second)

	assert.Zero(t, first.layout.Len())
	assert.Equal(t, 1, second.layout.Len())
}

func TestKeyboardWatcherUnregister(t *testing.T) {
	root := newFakeRoot()
	hidden := 0
	w := NewKeyboardWatcher(func() { hidden++ })

	w.Unregister()
	w.Register(root)
	root.Resize(1000)
	w.Unregister()
	w.Unregister()
	root.Resize(2000)

	assert.False(t, w.Registered())
	assert.False(t, w.Visible())
	assert.Zero(t, hidden)
}

func TestKeyboardWatcherNilRoot(t *testing.T) {
	w := NewKeyboardWatcher(nil)
	w.Register(nil)
	assert.False(t, w.Registered())
}

func TestKeyboardWatcherDensityScalesThreshold(t *testing.T) {
	root := &fakeRoot{bottom: 40, frame: 40, density: 0.1} // threshold 10 rows
	w := NewKeyboardWatcher(nil)
	w.Register(root)

	root.Resize(30)
	assert.False(t, w.Visible())
	root.Resize(29)
	assert.True(t, w.Visible())
}
