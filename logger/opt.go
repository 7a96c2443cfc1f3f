package logger

import (
	"time"

	"github.com/xy-planning-network/tlog"
)

// A LoggerOptFn is a functional option configuring a Logger when constructing a new one.
//
// Options set this way belong to the Logger they configure
// and always win over values inherited from a parent.
type LoggerOptFn func(*Logger)

// WithClock sets the source of the time used to stamp Records.
func WithClock(now func() time.Time) LoggerOptFn {
	return func(l *Logger) {
		l.opts.clock = now
	}
}

// WithColor enables or disables color decorations.
func WithColor(enable bool) LoggerOptFn {
	return func(l *Logger) {
		l.opts.enableColor = &enable
	}
}

// WithConsistentLevelWidth pads level names so all columns line up.
func WithConsistentLevelWidth(enable bool) LoggerOptFn {
	return func(l *Logger) {
		l.opts.consistentLevelWidth = &enable
	}
}

// WithLevel sets the threshold messages must pass.
func WithLevel(level tlog.LogLevel) LoggerOptFn {
	return func(l *Logger) {
		level = tlog.NewLogLevel(string(level))
		l.opts.logLevel = &level
	}
}

// WithParent sets the Logger configuration is inherited from and Records are forwarded to.
func WithParent(parent *Logger) LoggerOptFn {
	return func(l *Logger) {
		l.opts.parent = parent
	}
}

// WithPrefix sets the prefix the Logger adds after those of its ancestors.
func WithPrefix(prefix string) LoggerOptFn {
	return func(l *Logger) {
		l.opts.prefix = &prefix
	}
}

// WithPrintLevel toggles rendering the level of a Record.
func WithPrintLevel(enable bool) LoggerOptFn {
	return func(l *Logger) {
		l.opts.printLevel = &enable
	}
}

// WithTimestampFormat sets the [time.Layout] style format used to render timestamps.
func WithTimestampFormat(layout string) LoggerOptFn {
	return func(l *Logger) {
		l.opts.timestampFormat = &layout
	}
}

// WithTransports registers transports on the Logger, in order.
func WithTransports(transports ...Transport) LoggerOptFn {
	return func(l *Logger) {
		for _, t := range transports {
			l.addTransport(t)
		}
	}
}
