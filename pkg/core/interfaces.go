package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything. The renderer falls back to it when no logger is given.
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}
