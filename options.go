package libee

type (
	// Option configures an Emitter.
	Option func(*options)

	options struct {
		logger        Logger
		name          string
		recoverPanics bool
	}
)

func defaultOptions() options {
	return options{logger: NewNoopLogger()}
}

// WithLogger sets the logger the emitter reports to. Nil is ignored.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName tags every log line of the emitter with the given name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPanicRecovery makes Emit recover a panicking listener and return a
// *PanicError instead of unwinding into the caller. The listener stays
// registered, as it would after returning an error.
func WithPanicRecovery() Option {
	return func(o *options) {
		o.recoverPanics = true
	}
}
