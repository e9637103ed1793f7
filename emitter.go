// Package libee is an in-process event emitter: a registry of listeners on a
// single event channel with ordered delivery, once-listeners and cancellable
// subscriptions.
//
// Registrations are staged and only become visible to the next Emit, so
// listeners may subscribe, cancel or reset the emitter while a pass is
// running. Subscriptions reference their listener weakly: dropping the
// emitter never leaves a handle pinning listener closures in memory.
package libee

import "sync/atomic"

// Emitter delivers values of type T to its listeners in registration order.
// Build it with New for use across goroutines or NewLocal for a single
// goroutine.
type Emitter[T any] struct {
	// listeners is only reshaped by Emit (merge and cleanup) and Reset.
	// pending holds registrations made since the last merge. Both are
	// guarded by mu.
	listeners []*Listener[T]
	pending   []*Listener[T]
	mu        rwLocker

	// emitMu serializes emission passes and is held while handlers run.
	// depth counts nested passes on local emitters, guarded by emitMu.
	emitMu rwLocker
	depth  int

	newLock       lockerFactory
	logger        Logger
	recoverPanics bool

	emitted   atomic.Uint64
	failed    atomic.Uint64
	delivered atomic.Uint64
}

// New creates an Emitter that may be used from several goroutines at once.
//
// A handler may call On, Once, Subscribe, Len, Reset and Subscription.Cancel
// on the emitter that is calling it, but not Emit: emission passes are
// serialized and a nested Emit would wait on itself.
func New[T any](opts ...Option) *Emitter[T] {
	return newEmitter[T](newMutex, opts...)
}

// NewLocal creates an Emitter without any synchronization, for use from a
// single goroutine. Handlers may call every method on it, Emit included.
func NewLocal[T any](opts ...Option) *Emitter[T] {
	return newEmitter[T](newNoopLocker, opts...)
}

func newEmitter[T any](newLock lockerFactory, opts ...Option) *Emitter[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.WithField("component", "emitter")
	if o.name != "" {
		logger = logger.WithField("emitter", o.name)
	}

	return &Emitter[T]{
		mu:            newLock(),
		emitMu:        newLock(),
		newLock:       newLock,
		logger:        logger,
		recoverPanics: o.recoverPanics,
	}
}

// On registers a persistent listener. It first receives events from the
// next Emit call.
func (e *Emitter[T]) On(fn func(*Event[T]) error) *Subscription {
	return e.Subscribe(newListener(e.newLock(), false, handlerOf(fn)))
}

// Once registers a listener that is switched off after its first
// successful call. A call that returns an error leaves it armed.
func (e *Emitter[T]) Once(fn func(*Event[T]) error) *Subscription {
	return e.Subscribe(newListener(e.newLock(), true, handlerOf(fn)))
}

// Subscribe registers a prepared listener and returns its handle. A listener
// without a handler is never stored: its handle starts out inactive.
func (e *Emitter[T]) Subscribe(l *Listener[T]) *Subscription {
	if !l.hasHandler() {
		l.Deactivate()
		return newSubscription(l.state)
	}

	e.mu.Lock()
	e.pending = append(e.pending, l)
	e.mu.Unlock()

	return newSubscription(l.state)
}

func handlerOf[T any](fn func(*Event[T]) error) Handler[T] {
	if fn == nil {
		return nil
	}
	return HandlerFunc[T](fn)
}

// Len returns the number of active listeners, including the ones waiting
// for the next Emit to be merged.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return countActive(e.listeners) + countActive(e.pending)
}

func (e *Emitter[T]) IsEmpty() bool {
	return e.Len() == 0
}

// Reset drops every listener, merged or pending. Outstanding subscriptions
// turn into no-ops and a pass in progress skips the dropped listeners.
func (e *Emitter[T]) Reset() {
	e.mu.Lock()
	listeners, pending := e.listeners, e.pending
	e.listeners, e.pending = nil, nil
	e.mu.Unlock()

	for _, l := range listeners {
		l.Deactivate()
	}
	for _, l := range pending {
		l.Deactivate()
	}

	e.logger.Debugf("reset, dropped %d listeners", len(listeners)+len(pending))
}

// Stats returns counters and listener gauges for this emitter.
func (e *Emitter[T]) Stats() Stats {
	e.mu.RLock()
	active := countActive(e.listeners) + countActive(e.pending)
	pending := countActive(e.pending)
	e.mu.RUnlock()

	return Stats{
		Emitted:   e.emitted.Load(),
		Failed:    e.failed.Load(),
		Delivered: e.delivered.Load(),
		Active:    active,
		Pending:   pending,
	}
}

// Emit delivers value to every active listener in registration order and
// returns the first handler error as-is. Listeners after the failing one are
// not called on this pass and keep their state; the failing listener is not
// deactivated.
func (e *Emitter[T]) Emit(value T) error {
	return e.emit(value, nil)
}

// emit runs one pass. onSuccess, if set, runs under the emission lock when
// no listener failed.
func (e *Emitter[T]) emit(value T, onSuccess func()) error {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.depth++
	defer func() {
		e.depth--
		if e.depth == 0 {
			e.cleanup()
		}
	}()

	e.emitted.Add(1)

	listeners := e.merge()
	ev := NewEvent(value)

	for i, l := range listeners {
		called, err := e.call(i, l, ev)
		if err != nil {
			e.failed.Add(1)
			e.logger.Debugf("listener %d failed, stopping pass: %s", i, err)
			return err
		}

		if !called {
			continue
		}

		e.delivered.Add(1)
		if l.once {
			l.Deactivate()
		}
	}

	if onSuccess != nil {
		onSuccess()
	}

	return nil
}

func (e *Emitter[T]) call(i int, l *Listener[T], ev *Event[T]) (called bool, err error) {
	if e.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Errorf("listener %d panicked: %v", i, r)
				called, err = true, newPanicError(i, r)
			}
		}()
	}

	return l.invoke(ev)
}

// merge moves pending registrations behind the existing listeners and
// returns the sequence the current pass walks.
func (e *Emitter[T]) merge() []*Listener[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pending) > 0 {
		e.listeners = append(e.listeners, e.pending...)
		clear(e.pending)
		e.pending = e.pending[:0]
	}

	return e.listeners
}

// cleanup drops inactive listeners once the outermost pass is over.
func (e *Emitter[T]) cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.listeners[:0]
	for _, l := range e.listeners {
		if l.Active() {
			kept = append(kept, l)
		}
	}

	removed := len(e.listeners) - len(kept)
	clear(e.listeners[len(kept):])
	e.listeners = kept

	if removed > 0 {
		e.logger.Debugf("removed %d inactive listeners", removed)
	}
}

func countActive[T any](listeners []*Listener[T]) (n int) {
	for _, l := range listeners {
		if l.Active() {
			n++
		}
	}
	return
}
