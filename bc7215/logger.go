package bc7215

// Logger is an optional logging interface that can be provided to the driver.
// This allows integration with any logging framework; see the logging package
// for a zerolog-backed implementation.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
