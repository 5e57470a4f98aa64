package record

// State reports whether a field has ever accepted a change.
type State int

const (
	// Unchanged is the initial state.
	Unchanged State = iota
	// Changed is entered on the first accepted change and never left.
	Changed
)

func (s State) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Field is a tagged value with one step of history.
//
// The zero Field is Unchanged with the zero value of T.
type Field[T any] struct {
	state    State
	value    T
	previous T
}

// NewField returns an Unchanged field holding v.
func NewField[T any](v T) Field[T] {
	return Field[T]{state: Unchanged, value: v, previous: v}
}

// State returns the field's current state.
func (f Field[T]) State() State {
	return f.state
}

// View returns the authoritative value: the last accepted value once
// Changed, the original value while Unchanged.
func (f Field[T]) View() T {
	if f.state == Changed {
		return f.value
	}
	return f.previous
}

// Previous returns the value that was authoritative before the most recent
// accepted change. While Unchanged it equals View.
func (f Field[T]) Previous() T {
	return f.previous
}

// accept moves the field to Changed with v as the new authoritative value.
func (f *Field[T]) accept(v T) {
	f.previous = f.View()
	f.value = v
	f.state = Changed
}
