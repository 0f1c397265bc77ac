package showmore

// State is the derived lifecycle state of a Controller.
type State uint8

const (
	// StatePaging means hidden items remain and the control is shown.
	StatePaging State = iota
	// StateExhausted is terminal: every item is visible, the control is hidden.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StatePaging:
		return "paging"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
