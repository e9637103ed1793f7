package libee

import (
	"sync"
	"sync/atomic"
	"weak"
)

// Subscription is the caller's handle on a registered listener. It never
// keeps the listener alive: once the emitter has dropped the listener
// (cleanup, Reset, or the emitter itself being collected) the handle
// resolves to nothing and cancelling becomes a no-op.
//
// Scoped release is spelled with defer:
//
//	sub := em.On(handler)
//	defer sub.Cancel()
type Subscription struct {
	target     weak.Pointer[activation]
	cancelled  atomic.Bool
	cancelOnce sync.Once
}

func newSubscription(state *activation) *Subscription {
	return &Subscription{target: weak.Make(state)}
}

// Cancel deactivates the listener. It only acts on the first call and never
// waits for an in-progress emission.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}

	s.cancelOnce.Do(func() {
		s.cancelled.Store(true)

		if state := s.target.Value(); state != nil {
			state.deactivate()
		}
	})
}

// Close is Cancel in io.Closer form. It always returns nil.
func (s *Subscription) Close() error {
	s.Cancel()
	return nil
}

// Active reports whether the listener behind this handle is still armed.
func (s *Subscription) Active() bool {
	if s == nil || s.cancelled.Load() {
		return false
	}

	state := s.target.Value()
	if state == nil {
		return false
	}

	return state.isActive()
}
