package showmore

// Trigger is an in-process Control. Hosts forward their native events
// (button clicks, key presses) to Activate.
//
// Trigger is not safe for concurrent use; events are expected to be
// dispatched serially by the host.
type Trigger struct {
	handlers []func()
	visible  bool
}

// NewTrigger returns a visible Trigger with no handlers.
func NewTrigger() *Trigger {
	return &Trigger{
		visible: true,
	}
}

// Subscribe - implements ActivationSource. Nil handlers are ignored.
func (t *Trigger) Subscribe(handler func()) {
	if t == nil || handler == nil {
		return
	}

	t.handlers = append(t.handlers, handler)
}

// SetVisible - implements Affordance.
func (t *Trigger) SetVisible(visible bool) {
	if t == nil {
		return
	}

	t.visible = visible
}

// Visible reports whether the control is currently shown.
func (t *Trigger) Visible() bool {
	if t == nil {
		return false
	}

	return t.visible
}

// Activate dispatches the activation signal to every handler in
// subscription order. A hidden trigger cannot be activated, in which case
// Activate returns false.
func (t *Trigger) Activate() bool {
	if !t.Visible() {
		return false
	}

	for _, h := range t.handlers {
		h()
	}

	return true
}

var _ Control = (*Trigger)(nil)
