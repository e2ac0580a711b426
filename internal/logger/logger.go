// Package logger wraps a process-wide logrus logger. Entries carry the
// request trace id when one is present on the context.
package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return l
}

// Setup applies the configured level. Development mode switches to the
// text formatter.
func Setup(level, mode string) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}
	log.SetLevel(parsedLevel)

	if mode == "development" {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

func fromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		entry = entry.WithField("trace_id", traceID)
	}
	return entry
}

func WithFields(fields map[string]interface{}) *logrus.Entry {
	return log.WithFields(fields)
}

// WithArtifact tags an entry with the artifact name and the file it came from.
func WithArtifact(name, path string) *logrus.Entry {
	return log.WithFields(logrus.Fields{"artifact": name, "path": path})
}

func Info(msg string) {
	log.Info(msg)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warn(msg string) {
	log.Warn(msg)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func WarnCtx(ctx context.Context, msg string) {
	fromContext(ctx).Warn(msg)
}

func ErrorCtxf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Errorf(format, args...)
}
