package logger

import (
	"fmt"

	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/stopwatch"
)

const (
	// DefaultStatus is the status a completed timing reports unless told otherwise.
	DefaultStatus = "finished"

	// FailedStatus is the status reported by Time and TimeValue when the action returns an error.
	FailedStatus = "failed"
)

func noop() {}

// TimeStart writes args at level and starts timing,
// returning a func that writes args again, followed by "<status>. (<duration>)".
// The status defaults to DefaultStatus.
//
// If level is not enabled, TimeStart writes nothing and returns a func doing nothing.
func (l *Logger) TimeStart(level tlog.LogLevel, args ...any) (stop func(status ...string)) {
	if !l.IsLevelEnabled(level) {
		return func(...string) {}
	}

	l.Write(level, args...)
	sw := l.newStopwatch()
	sw.Start()

	return func(status ...string) {
		st := DefaultStatus
		if len(status) > 0 && status[0] != "" {
			st = status[0]
		}

		sw.Stop()
		l.Write(level, withCompletion(args, st, sw)...)
	}
}

// Time calls action, timing it if level is enabled.
// action always runs; pause and resume stop and restart the timing,
// and do nothing if level is not enabled.
//
// Time returns the error action returns.
func (l *Logger) Time(level tlog.LogLevel, args []any, action func(pause, resume func()) error) error {
	_, err := TimeValue(l, level, args, func(pause, resume func()) (struct{}, error) {
		return struct{}{}, action(pause, resume)
	})

	return err
}

// TimeValue is Time for actions producing a value.
func TimeValue[T any](l *Logger, level tlog.LogLevel, args []any, action func(pause, resume func()) (T, error)) (T, error) {
	if !l.IsLevelEnabled(level) {
		return action(noop, noop)
	}

	l.Write(level, args...)
	sw := l.newStopwatch()
	sw.Start()

	val, err := action(sw.Stop, sw.Start)
	sw.Stop()

	status := DefaultStatus
	if err != nil {
		status = FailedStatus
	}

	l.Write(level, withCompletion(args, status, sw)...)

	return val, err
}

// TimeAsync times an action that finishes in the background,
// signalling so by sending on, or closing, the channel it returns.
//
// If level is enabled, the completion message is written once that channel yields,
// and the value received is forwarded on the returned channel, which is then closed.
// An action returning a nil channel is treated as having finished immediately.
//
// If level is not enabled, TimeAsync returns the action's channel as is.
func TimeAsync[T any](l *Logger, level tlog.LogLevel, args []any, action func(pause, resume func()) <-chan T) <-chan T {
	if !l.IsLevelEnabled(level) {
		return action(noop, noop)
	}

	l.Write(level, args...)
	sw := l.newStopwatch()
	sw.Start()

	in := action(sw.Stop, sw.Start)
	if in == nil {
		sw.Stop()
		l.Write(level, withCompletion(args, DefaultStatus, sw)...)
		return nil
	}

	out := make(chan T, 1)
	go func() {
		defer close(out)

		val, ok := <-in
		sw.Stop()
		l.Write(level, withCompletion(args, DefaultStatus, sw)...)

		if ok {
			out <- val
		}
	}()

	return out
}

func (l *Logger) newStopwatch() *stopwatch.Stopwatch {
	return stopwatch.New(stopwatch.WithClock(l.clock()))
}

// withCompletion copies args, appending the completion status and duration.
func withCompletion(args []any, status string, sw *stopwatch.Stopwatch) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, args...)

	return append(out, fmt.Sprintf("%s. (%s)", status, sw.DurationText()))
}
