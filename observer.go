package libee

// Observer is the contract shared by every emitter flavour in this package.
type Observer[T any] interface {
	// On registers a persistent listener.
	On(fn func(*Event[T]) error) *Subscription
	// Once registers a listener that fires on one successful call at most.
	Once(fn func(*Event[T]) error) *Subscription
	// Subscribe registers a prepared listener.
	Subscribe(l *Listener[T]) *Subscription
	// Emit delivers value and returns the first listener error.
	Emit(value T) error
	Len() int
	IsEmpty() bool
	Reset()
	Stats() Stats
}

var (
	_ Observer[any] = (*Emitter[any])(nil)
	_ Observer[any] = (*StatefulEmitter[any])(nil)
)
