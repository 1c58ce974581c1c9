package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// StructuredLogger implements the Logger interface with leveled,
// field-annotated output
type StructuredLogger struct {
	level  LogLevel
	logger *log.Logger
	writer io.Writer
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(level LogLevel, writer io.Writer) *StructuredLogger {
	return &StructuredLogger{
		level:  level,
		logger: log.New(writer, "", 0), // We'll format timestamps ourselves
		writer: writer,
	}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(level LogLevel, filename string) (*StructuredLogger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", filename, err)
	}

	return NewStructuredLogger(level, file), nil
}

// NewConsoleLogger creates a logger that writes to stderr, keeping
// stdout free for parsed output
func NewConsoleLogger(level LogLevel) *StructuredLogger {
	return NewStructuredLogger(level, os.Stderr)
}

// Debug logs a debug message with optional fields
func (l *StructuredLogger) Debug(msg string, fields ...Field) {
	if l.level <= DebugLevel {
		l.log(DebugLevel, msg, fields...)
	}
}

// Info logs an info message with optional fields
func (l *StructuredLogger) Info(msg string, fields ...Field) {
	if l.level <= InfoLevel {
		l.log(InfoLevel, msg, fields...)
	}
}

// Warn logs a warning message with optional fields
func (l *StructuredLogger) Warn(msg string, fields ...Field) {
	if l.level <= WarnLevel {
		l.log(WarnLevel, msg, fields...)
	}
}

// Error logs an error message with optional fields
func (l *StructuredLogger) Error(msg string, fields ...Field) {
	if l.level <= ErrorLevel {
		l.log(ErrorLevel, msg, fields...)
	}
}

// log formats and writes the log message
func (l *StructuredLogger) log(level LogLevel, msg string, fields ...Field) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	logMsg := fmt.Sprintf("[%s] %s: %s", timestamp, level.String(), msg)

	if len(fields) > 0 {
		fieldStrs := make([]string, len(fields))
		for i, field := range fields {
			fieldStrs[i] = fmt.Sprintf("%s=%v", field.Key, field.Value)
		}
		logMsg += " | " + strings.Join(fieldStrs, " ")
	}

	l.logger.Println(logMsg)
}

// SetLevel changes the logging level
func (l *StructuredLogger) SetLevel(level LogLevel) {
	l.level = level
}

// Close closes the logger if it's writing to a file
func (l *StructuredLogger) Close() error {
	if closer, ok := l.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Helper functions for creating common fields

// StringField creates a string field
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// IntField creates an integer field
func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates an error field
func ErrorField(err error) Field {
	return Field{Key: "error", Value: err.Error()}
}

// RunField creates a run id field
func RunField(runID string) Field {
	return Field{Key: "run_id", Value: runID}
}

// CommandField creates an IRC command field
func CommandField(command string) Field {
	return Field{Key: "command", Value: command}
}

// SourceField creates a message source field
func SourceField(source string) Field {
	return Field{Key: "source", Value: source}
}

// LineField creates an input line number field
func LineField(line int) Field {
	return Field{Key: "line", Value: line}
}

// CountField creates a message count field
func CountField(count int) Field {
	return Field{Key: "count", Value: count}
}

// LoggerConfig represents logger configuration
type LoggerConfig struct {
	Level string
	File  string
}

// NewLoggerFromConfig creates a logger based on configuration
func NewLoggerFromConfig(config LoggerConfig) (*StructuredLogger, error) {
	level, err := ParseLogLevel(config.Level)
	if err != nil {
		return nil, err
	}

	if config.File == "" || config.File == "stderr" {
		return NewConsoleLogger(level), nil
	}

	return NewFileLogger(level, config.File)
}
