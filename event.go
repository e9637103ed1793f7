package libee

// Event wraps a single emitted value for the duration of one Emit call.
// The same Event is handed to every listener in turn.
type Event[T any] struct {
	value   T
	stopped bool
}

func NewEvent[T any](value T) *Event[T] {
	return &Event[T]{value: value}
}

// Data returns the emitted value.
func (e *Event[T]) Data() T {
	return e.value
}

// Stop flags the event as stopped. The emitter does not act on it: delivery
// to the remaining listeners carries on. Listeners that want to halt the
// pass should return ErrStopPropagation instead.
func (e *Event[T]) Stop() {
	e.stopped = true
}

func (e *Event[T]) Stopped() bool {
	return e.stopped
}
