package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting account from the request context
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if accountID, ok := ctx.Value("account_id").(string); ok && accountID != "" {
		logger.Entry = logger.Entry.WithField("account", accountID)
	} else if email, ok := ctx.Value("email").(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("account", email)
	} else {
		logger.Entry = logger.Entry.WithField("account", "unknown")
	}

	return logger
}

// WithFields creates a logger with the given fields
func WithFields(fields map[string]interface{}) *Logger {
	return New().WithFields(fields)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
