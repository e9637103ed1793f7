package libee

// Logger is the leveled, field-carrying logger the emitter writes to.
// Plug in any implementation through WithLogger; NewZapLogger adapts zap.
type Logger interface {
	WithField(key string, value any) Logger
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}
