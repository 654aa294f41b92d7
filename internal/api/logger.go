package api

import "log"

// Logger provides structured logging for gateway operations
type Logger struct {
	operation string
}

// NewLogger creates a logger scoped to one gateway operation
func NewLogger(operation string) *Logger {
	return &Logger{operation: operation}
}

// LogError logs an error with context
func (l *Logger) LogError(err error) {
	log.Printf("[error] component=gateway operation=%s error=%v", l.operation, err)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(format string, args ...interface{}) {
	log.Printf("[info] component=gateway operation=%s "+format, append([]interface{}{l.operation}, args...)...)
}

// LogWarnf logs a formatted warning with context
func (l *Logger) LogWarnf(format string, args ...interface{}) {
	log.Printf("[warn] component=gateway operation=%s "+format, append([]interface{}{l.operation}, args...)...)
}
