package core

// Logger is any service that can log messages.
// args may hold errors, map[string]interface{} extras, the current profile (for error reporting)
// and key/value pairs, eg. log.Info("task added", "id", t.ID).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
