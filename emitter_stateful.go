package libee

// StatefulEmitter is an Emitter that remembers the last value it delivered
// without any listener failing.
type StatefulEmitter[T any] struct {
	*Emitter[T]

	// last and hasLast are guarded by mu.
	last    T
	hasLast bool
	mu      rwLocker
}

// NewStateful wraps em, or a fresh shared Emitter when em is nil. The
// wrapped emitter should not be emitted on directly afterwards, or Last
// misses those values.
func NewStateful[T any](em *Emitter[T]) *StatefulEmitter[T] {
	if em == nil {
		em = New[T]()
	}

	return &StatefulEmitter[T]{
		Emitter: em,
		mu:      em.newLock(),
	}
}

// Emit delivers value like Emitter.Emit and records it as the last value
// when every listener succeeded.
func (s *StatefulEmitter[T]) Emit(value T) error {
	return s.Emitter.emit(value, func() {
		s.mu.Lock()
		s.last, s.hasLast = value, true
		s.mu.Unlock()
	})
}

// Last returns the last successfully emitted value, if any.
func (s *StatefulEmitter[T]) Last() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last, s.hasLast
}

// Reset drops every listener and forgets the last value.
func (s *StatefulEmitter[T]) Reset() {
	s.mu.Lock()
	var zero T
	s.last, s.hasLast = zero, false
	s.mu.Unlock()

	s.Emitter.Reset()
}
