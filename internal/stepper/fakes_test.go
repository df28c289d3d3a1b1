package stepper

type fakeField struct {
	text     string
	editable bool
	focused  bool
	writes   int
	root     *fakeRoot

	focus  Emitter[bool]
	detach Emitter[struct{}]
}

func newFakeField() *fakeField {
	return &fakeField{root: newFakeRoot()}
}

func (f *fakeField) Text() string { return f.text }

func (f *fakeField) SetText(text string) {
	f.text = text
	f.writes++
}

func (f *fakeField) SetEditable(editable bool) { f.editable = editable }
func (f *fakeField) Focused() bool             { return f.focused }
func (f *fakeField) Root() Root                { return f.root }

// Type replaces the pending text the way a user would, without a write.
func (f *fakeField) Type(text string) { f.text = text }

func (f *fakeField) Focus() {
	if f.focused || !f.editable {
		return
	}
	f.focused = true
	f.focus.Emit(true)
}

func (f *fakeField) Blur() {
	if !f.focused {
		return
	}
	f.focused = false
	f.focus.Emit(false)
}

func (f *fakeField) Detach() { f.detach.Emit(struct{}{}) }

func (f *fakeField) OnFocusChange(fn func(bool)) Subscription {
	return f.focus.Subscribe(fn)
}

func (f *fakeField) OnDetach(fn func()) Subscription {
	return f.detach.Subscribe(func(struct{}) { fn() })
}

type fakeButton struct {
	enabled bool
	press   Emitter[struct{}]
}

func (b *fakeButton) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *fakeButton) OnPress(fn func()) Subscription {
	return b.press.Subscribe(func(struct{}) { fn() })
}

func (b *fakeButton) Press() { b.press.Emit(struct{}{}) }

type fakeRoot struct {
	bottom  int
	frame   int
	density float64
	layout  Emitter[struct{}]
}

func newFakeRoot() *fakeRoot {
	return &fakeRoot{bottom: 2000, frame: 2000, density: 2}
}

func (r *fakeRoot) OnLayout(fn func()) Subscription {
	return r.layout.Subscribe(func(struct{}) { fn() })
}

func (r *fakeRoot) RootBottom() int         { return r.bottom }
func (r *fakeRoot) VisibleFrameBottom() int { return r.frame }
func (r *fakeRoot) Density() float64        { return r.density }

// Resize moves the visible frame bottom and dispatches a layout signal.
func (r *fakeRoot) Resize(frame int) {
	r.frame = frame
	r.layout.Emit(struct{}{})
}

type harness struct {
	field       *fakeField
	minus       *fakeButton
	plus        *fakeButton
	controller  *Controller
	coordinator *Coordinator
	changes     []float64
}

func newHarness() *harness {
	h := &harness{
		field: newFakeField(),
		minus: &fakeButton{},
		plus:  &fakeButton{},
	}
	h.controller, h.coordinator = New(h.field, h.minus, h.plus)
	h.controller.OnValueChanged(func(c *Controller, v float64) {
		h.changes = append(h.changes, v)
	})
	return h
}
