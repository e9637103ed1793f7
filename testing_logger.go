package libee

import (
	"fmt"
	"sync"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

// recordingLogger keeps every entry in memory so tests can assert on what
// the emitter logged.
type recordingLogger struct {
	fields map[string]any
	sink   *logSink
}

type logSink struct {
	mu      sync.Mutex
	entries []logEntry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{
		fields: make(map[string]any),
		sink:   &logSink{},
	}
}

func (l *recordingLogger) WithField(key string, value any) Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &recordingLogger{fields: fields, sink: l.sink}
}

func (l *recordingLogger) log(level, msg string) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.entries = append(l.sink.entries, logEntry{level: level, msg: msg, fields: l.fields})
}

func (l *recordingLogger) Entries() []logEntry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	return append([]logEntry(nil), l.sink.entries...)
}

func (l *recordingLogger) Debug(args ...any) { l.log("DEBUG", fmt.Sprint(args...)) }

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.log("DEBUG", fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(args ...any) { l.log("INFO", fmt.Sprint(args...)) }

func (l *recordingLogger) Infof(format string, args ...any) {
	l.log("INFO", fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warn(args ...any) { l.log("WARN", fmt.Sprint(args...)) }

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(args ...any) { l.log("ERROR", fmt.Sprint(args...)) }

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.log("ERROR", fmt.Sprintf(format, args...))
}
