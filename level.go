// Package tlog holds the pieces of a tlog setup shared by every other package:
// the [LogLevel] table, sentinel errors, and helpers for reading configuration
// from environment variables.
//
// The hierarchical logger itself lives in [github.com/xy-planning-network/tlog/logger]
// and its sinks in [github.com/xy-planning-network/tlog/transport].
package tlog

import (
	"fmt"
	"strings"
)

var _ Enumerable = LevelLog

// A LogLevel is the symbolic name of a severity.
//
// The canonical LogLevels each map to a fixed priority:
//
//	off   0
//	error 1
//	warn  2
//	log   3
//	info  4
//	debug 5
//	trace 6
//
// A LogLevel outside of this set is still usable:
// it is displayed verbatim but compares as if it were LevelLog.
type LogLevel string

const (
	LevelOff   LogLevel = "off"
	LevelError LogLevel = "error"
	LevelWarn  LogLevel = "warn"
	LevelLog   LogLevel = "log"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
	LevelTrace LogLevel = "trace"
)

var levels = [...]LogLevel{
	LevelOff,
	LevelError,
	LevelWarn,
	LevelLog,
	LevelInfo,
	LevelDebug,
	LevelTrace,
}

var priorities = map[LogLevel]int{
	LevelOff:   0,
	LevelError: 1,
	LevelWarn:  2,
	LevelLog:   3,
	LevelInfo:  4,
	LevelDebug: 5,
	LevelTrace: 6,
}

// Levels returns the canonical LogLevels ordered by priority, LevelOff first.
func Levels() []LogLevel {
	out := make([]LogLevel, len(levels))
	copy(out, levels[:])
	return out
}

// NewLogLevel normalizes val into a LogLevel.
//
// Canonical names are matched case-insensitively, so "WARN" becomes LevelWarn.
// Any other value is kept as is, allowing ad-hoc labels such as "CUSTOM".
func NewLogLevel(val string) LogLevel {
	ll := LogLevel(strings.ToLower(strings.TrimSpace(val)))
	if _, ok := priorities[ll]; ok {
		return ll
	}

	return LogLevel(val)
}

// FromPriority converts a numeric priority into its LogLevel.
// A priority outside of the canonical range resolves to LevelLog.
func FromPriority(p int) LogLevel {
	if p < 0 || p >= len(levels) {
		return LevelLog
	}

	return levels[p]
}

// Priority returns the numeric severity of ll.
// Unknown LogLevels have the priority of LevelLog.
func (ll LogLevel) Priority() int {
	if p, ok := priorities[ll]; ok {
		return p
	}

	if p, ok := priorities[LogLevel(strings.ToLower(string(ll)))]; ok {
		return p
	}

	return priorities[LevelLog]
}

// Enables asserts whether a message written at level passes ll used as a threshold.
//
// A message is enabled when its priority is at or below the threshold's,
// so LevelOff mutes every message other than those written at LevelOff itself.
func (ll LogLevel) Enables(level LogLevel) bool {
	return level.Priority() <= ll.Priority()
}

// String returns the symbolic name of ll exactly as it was created.
func (ll LogLevel) String() string { return string(ll) }

// Valid returns ErrNotValid if ll is not one of the canonical LogLevels.
func (ll LogLevel) Valid() error {
	if _, ok := priorities[ll]; ok {
		return nil
	}

	return fmt.Errorf("%w: log level %q", ErrNotValid, string(ll))
}
