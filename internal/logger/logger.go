package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// RequestIDContextKey is the context key holding the current request id.
const RequestIDContextKey contextKey = "request_id"

var std = logrus.New()

func init() {
	std.SetOutput(os.Stdout)
	std.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		std.SetLevel(level)
	}
}

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// GetLogger returns a log entry bound to the request id in ctx, if any.
func GetLogger(ctx context.Context) *logrus.Entry {
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok && requestID != "" {
		return std.WithField("request_id", requestID)
	}
	return logrus.NewEntry(std)
}

// Debugf logs a debug message with the request context
func Debugf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Debugf(format, args...)
}

// Info logs an info message with the request context
func Info(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Infof(format, args...)
}

// Warnf logs a warning message with the request context
func Warnf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Warnf(format, args...)
}

// Errorf logs an error message with the request context
func Errorf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)
}
