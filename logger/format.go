package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/xy-planning-network/tlog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// levelWidth is the length of the longest canonical level name.
const levelWidth = 5

// FormatTimestamp renders t using layout, a [time.Layout] style format.
// An empty layout renders with DefaultTimestampFormat.
func FormatTimestamp(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimestampFormat
	}

	return t.Format(layout)
}

// FormatLeadingParts renders everything printed ahead of the args of rec:
//
//	[15:04:05.000][LEVEL] prefixes
//
// The level is left out if l does not print levels,
// and padded to a fixed width if l uses consistent level widths.
// Prefixes, if any, are concatenated without separators.
//
// If color is true, the timestamp and level are decorated.
func (l *Logger) FormatLeadingParts(rec Record, color bool) string {
	var b strings.Builder

	ts := "[" + rec.Timestamp + "]"
	if color {
		ts = TimestampDecoration(ts)
	}
	b.WriteString(ts)

	if l.PrintLevel() {
		text := cases.Upper(language.Und).String(rec.Level.String())
		if l.ConsistentLevelWidth() {
			text = fmt.Sprintf("%-*s", levelWidth, text)
		}

		if color {
			text = LevelDecoration(rec.Level)(text)
		}

		b.WriteString("[" + text + "]")
	}

	if prefix := strings.Join(rec.Prefixes, ""); prefix != "" {
		b.WriteString(" " + prefix)
	}

	return b.String()
}

// FormatMessage renders rec in full: its leading parts, a space, and its args.
func (l *Logger) FormatMessage(rec Record, color bool) string {
	return l.FormatLeadingParts(rec, color) + " " + rec.ArgsText
}

// A Decoration wraps text in terminal escape sequences.
type Decoration func(string) string

// TimestampDecoration renders the bracketed timestamp in grey.
func TimestampDecoration(s string) string { return timestampDecoration(s) }

// LevelDecoration returns the Decoration used for level.
// Levels without one fall back to that of [tlog.LevelLog].
func LevelDecoration(level tlog.LogLevel) Decoration {
	if d, ok := levelDecorations[tlog.NewLogLevel(level.String())]; ok {
		return d
	}

	return levelDecorations[tlog.LevelLog]
}
