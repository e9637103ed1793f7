package libee

type (
	// Handler is the single-method contract every listener body satisfies.
	Handler[T any] interface {
		Handle(ev *Event[T]) error
	}

	// HandlerFunc adapts a plain function to Handler.
	HandlerFunc[T any] func(ev *Event[T]) error
)

func (f HandlerFunc[T]) Handle(ev *Event[T]) error {
	return f(ev)
}

// activation is the on/off cell of a listener. The owning emitter reaches it
// through the listener; a Subscription only holds a weak pointer to it.
type activation struct {
	mu      rwLocker
	active  bool
	running bool
	release func()
}

func (a *activation) isActive() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.active
}

// deactivate switches the cell off and runs release once. It reports whether
// this call was the one that flipped it.
func (a *activation) deactivate() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.active {
		return false
	}

	a.active = false
	if a.release != nil {
		a.release()
		a.release = nil
	}

	return true
}

// Listener is a registered handler together with its once flag and
// activation state.
type Listener[T any] struct {
	state *activation
	// handler is guarded by state.mu and cleared on deactivation
	handler Handler[T]
	once    bool
}

// NewListener builds an active listener, safe for use from several
// goroutines. Pass it to Emitter.Subscribe to register it.
func NewListener[T any](once bool, handler Handler[T]) *Listener[T] {
	return newListener(newMutex(), once, handler)
}

func newListener[T any](mu rwLocker, once bool, handler Handler[T]) *Listener[T] {
	l := &Listener[T]{
		handler: handler,
		once:    once,
	}

	l.state = &activation{
		mu:     mu,
		active: true,
		release: func() {
			// drop captures as soon as the listener is switched off
			l.handler = nil
		},
	}

	return l
}

// Call invokes the handler and returns its error untouched. Inactive
// listeners are skipped and report nil.
func (l *Listener[T]) Call(ev *Event[T]) error {
	_, err := l.invoke(ev)
	return err
}

// invoke runs the handler outside the activation lock, so a handler may
// cancel its own subscription. A once-listener already running further up
// the stack is skipped, so a nested pass cannot fire it a second time.
func (l *Listener[T]) invoke(ev *Event[T]) (called bool, err error) {
	l.state.mu.Lock()
	handler, active := l.handler, l.state.active
	if !active || handler == nil || (l.once && l.state.running) {
		l.state.mu.Unlock()
		return false, nil
	}
	if l.once {
		l.state.running = true
	}
	l.state.mu.Unlock()

	if l.once {
		defer func() {
			l.state.mu.Lock()
			l.state.running = false
			l.state.mu.Unlock()
		}()
	}

	return true, handler.Handle(ev)
}

func (l *Listener[T]) hasHandler() bool {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()

	return l.handler != nil
}

func (l *Listener[T]) Active() bool {
	return l.state.isActive()
}

func (l *Listener[T]) Once() bool {
	return l.once
}

// Deactivate switches the listener off and releases its handler. Repeated
// calls are no-ops.
func (l *Listener[T]) Deactivate() {
	l.state.deactivate()
}
