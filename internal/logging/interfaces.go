package logging

// Field represents a structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// Logger defines the interface for leveled structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
