package showmore

// Item is one unit of displayable content in the paged list.
type Item interface {
	SetHidden(hidden bool)
}

// ItemFunc adapts a plain function to Item.
type ItemFunc func(hidden bool)

// SetHidden - implements Item.
func (f ItemFunc) SetHidden(hidden bool) {
	if f != nil {
		f(hidden)
	}
}

// Affordance is the presentational side of the "show more" control.
type Affordance interface {
	SetVisible(visible bool)
}

// ActivationSource emits a repeatable activation signal (a click, a key
// press, ...). Subscribe registers a handler that is called on every
// activation.
type ActivationSource interface {
	Subscribe(handler func())
}

// Control is the interactive element the Controller binds to.
type Control interface {
	Affordance
	ActivationSource
}

var _ Item = ItemFunc(nil)
