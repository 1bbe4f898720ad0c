// Package logging provides a logging abstraction that decouples the
// application from the underlying logging framework. Components depend on
// the Logger interface and receive an implementation at construction time,
// which keeps them testable with the mock logger.
package logging

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Standard field names used across the application so log output stays
// consistent and easy to filter.
const (
	FieldFormat   = "format"
	FieldRow      = "row"
	FieldReason   = "reason"
	FieldStore    = "store"
	FieldCategory = "category"
	FieldCount    = "count"
	FieldUser     = "user_id"
	FieldSession  = "session_id"
)

var defaultLogger Logger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide default logger. Packages that are not
// wired through dependency injection use this as their fallback.
func GetLogger() Logger {
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
