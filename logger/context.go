package logger

import "context"

type ctxKey string

// loggerKey stashes the *Logger used while handling a request or job.
const loggerKey ctxKey = "tlog context key: logger"

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the *Logger stashed in ctx by NewContext.
// If none is set, it initializes a new root *Logger without Transports.
func FromContext(ctx context.Context) *Logger {
	l, ok := ctx.Value(loggerKey).(*Logger)
	if !ok || l == nil {
		l = New()
	}

	return l
}
