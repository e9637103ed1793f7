package libee

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStopPropagation is the sentinel a listener returns to halt an emission
// pass. Emit hands it back to the caller like any other handler error.
var ErrStopPropagation = errors.New("event propagation stopped")

// IsStopPropagation reports whether err, or anything it wraps, is
// ErrStopPropagation.
func IsStopPropagation(err error) bool {
	return errors.Is(err, ErrStopPropagation)
}

// PanicError is returned by Emit when a listener panicked and the emitter
// was built with WithPanicRecovery.
type PanicError struct {
	// Value is what the listener passed to panic.
	Value any
	// Index is the listener position within the pass, zero based.
	Index int

	cause error
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("listener %d panicked: %v", e.Index, e.Value)
}

func (e *PanicError) Unwrap() error { return e.cause }

// StackTrace exposes the stack recorded when the panic was recovered.
func (e *PanicError) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func newPanicError(index int, recovered any) *PanicError {
	var cause error
	if err, ok := recovered.(error); ok {
		cause = errors.Wrapf(err, "listener %d panicked", index)
	} else {
		cause = errors.Errorf("listener %d panicked: %v", index, recovered)
	}

	return &PanicError{
		Value: recovered,
		Index: index,
		cause: cause,
	}
}
