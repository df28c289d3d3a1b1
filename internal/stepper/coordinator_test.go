package stepper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementFromPendingText(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 9)
	require.Equal(t, "9", h.field.Text())

	h.plus.Press()

	assert.Equal(t, 10.0, h.controller.Value())
	assert.Equal(t, "10", h.field.Text())
	assert.False(t, h.plus.enabled)
	assert.True(t, h.minus.enabled)
	assert.Equal(t, []float64{10}, h.changes)
}

func TestButtonsStepFromUncommittedText(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 100, 10)
	h.field.Focus()
	h.field.Type("42")

	h.minus.Press()

	assert.Equal(t, 41.0, h.controller.State().Value)
	assert.Equal(t, "41", h.field.Text())
	assert.True(t, h.field.Focused(), "pressing a button does not require blur")
}

func TestStepUsesConfiguredStep(t *testing.T) {
	h := newHarness()
	h.controller.Configure(5, 0, 50, 20)

	h.plus.Press()
	h.plus.Press()
	h.minus.Press()

	assert.Equal(t, []float64{25, 30, 25}, h.changes)
}

func TestDecrementAtMinimumStaysClamped(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 0)

	h.minus.Press()

	assert.Equal(t, 0.0, h.controller.Value())
	assert.Equal(t, "0", h.field.Text())
	assert.False(t, h.minus.enabled)
	assert.Empty(t, h.changes)
}

func TestEmptyPendingTextCommitsZeroOnBlur(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, -10, 10, 3)
	h.field.Focus()
	h.field.Type("")

	h.field.Blur()

	assert.Equal(t, 0.0, h.controller.Value())
	assert.Equal(t, "0", h.field.Text())
	assert.Equal(t, []float64{0}, h.changes)
}

func TestEmptyPendingTextClampedIntoRange(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 5, 10, 7)
	h.field.Focus()
	h.field.Type("")

	h.field.Blur()

	assert.Equal(t, 5.0, h.controller.Value())
	assert.Equal(t, "5", h.field.Text())
}

func TestEmptyPendingTextIncrement(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 7)
	h.field.Type("")

	h.plus.Press()

	assert.Equal(t, 1.0, h.controller.Value())
}

func TestFocusRegistersWatcher(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 0)

	h.field.Focus()
	assert.True(t, h.coordinator.Watcher().Registered())
	assert.Equal(t, 1, h.field.root.layout.Len())

	h.field.Blur()
	assert.False(t, h.coordinator.Watcher().Registered())
	assert.Zero(t, h.field.root.layout.Len())
}

func TestKeyboardHideCommitsPendingText(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 20, 0)
	h.field.Focus()

	h.field.root.Resize(1200) // keyboard shown
	h.field.Type("7")
	h.field.root.Resize(2000) // keyboard hidden

	assert.Equal(t, 7.0, h.controller.State().Value)
	assert.True(t, h.field.Focused())
	assert.Equal(t, []float64{7}, h.changes)
}

func TestKeyboardHideNormalizesPendingText(t *testing.T) {
	h := newHarness()
	h.controller.Configure(5, 0, 20, 0)
	h.field.Focus()

	h.field.root.Resize(1200)
	h.field.Type("7")
	h.field.root.Resize(2000)

	assert.Equal(t, 5.0, h.controller.State().Value)
	assert.Equal(t, "5", h.field.Text())
}

func TestKeyboardSignalsIgnoredWhenUnfocused(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 20, 0)
	h.field.Type("7")

	h.field.root.Resize(1200)
	h.field.root.Resize(2000)

	assert.Equal(t, 0.0, h.controller.State().Value)
	assert.Empty(t, h.changes)
}

func TestDetachUnregistersWatcher(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 20, 0)
	h.field.Focus()

	h.field.Detach()

	assert.False(t, h.coordinator.Watcher().Registered())
	assert.Zero(t, h.field.root.layout.Len())
}

func TestReadOnlyFieldCannotFocus(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 5, 5, 0)

	h.field.Focus()

	assert.False(t, h.field.Focused())
	assert.False(t, h.coordinator.Watcher().Registered())
}

func TestParseErrorLeavesStateUntouched(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 4)
	h.field.Type("4x")

	err := h.coordinator.SyncValue()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4x")

	require.Error(t, h.coordinator.Increment())
	assert.Equal(t, 4.0, h.controller.State().Value)
	assert.Empty(t, h.changes)
}

func TestHostEventErrorsReported(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 4)

	var errs []error
	sub := h.coordinator.OnError(func(err error) { errs = append(errs, err) })

	h.field.Focus()
	h.field.Type("4x")
	h.plus.Press()
	h.minus.Press()
	h.field.Blur()

	require.Len(t, errs, 3)
	for _, err := range errs {
		assert.Contains(t, err.Error(), "4x")
	}
	assert.Equal(t, 4.0, h.controller.State().Value)

	sub.Dispose()
	h.plus.Press()
	assert.Len(t, errs, 3)
}

func TestHostEventsWithoutErrorsReportNothing(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 4)

	called := false
	h.coordinator.OnError(func(error) { called = true })

	h.plus.Press()
	h.field.Focus()
	h.field.Type("")
	h.field.Blur()

	assert.False(t, called)
	assert.Equal(t, []float64{5, 0}, h.changes)
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	h := newHarness()
	h.controller.Configure(1, 0, 10, 4)
	h.field.Focus()

	h.coordinator.Close()
	h.coordinator.Close()

	assert.Zero(t, h.plus.press.Len())
	assert.Zero(t, h.minus.press.Len())
	assert.Zero(t, h.field.focus.Len())
	assert.Zero(t, h.field.detach.Len())
	assert.Zero(t, h.field.root.layout.Len())

	h.plus.Press()
	assert.Equal(t, 4.0, h.controller.State().Value)
}
