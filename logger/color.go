package logger

import (
	"github.com/fatih/color"
	"github.com/xy-planning-network/tlog"
)

var (
	timestampDecoration = colorizer(color.FgHiBlack)

	levelDecorations = map[tlog.LogLevel]Decoration{
		tlog.LevelOff:   plain,
		tlog.LevelError: colorizer(color.FgRed),
		tlog.LevelWarn:  colorizer(color.FgYellow),
		tlog.LevelLog:   plain,
		tlog.LevelInfo:  colorizer(color.FgGreen),
		tlog.LevelDebug: colorizer(color.FgBlue),
		tlog.LevelTrace: colorizer(color.FgMagenta),
	}
)

// colorizer builds a Decoration that always emits escape sequences.
// Whether to decorate at all is up to the Logger rather than terminal detection.
func colorizer(attrs ...color.Attribute) Decoration {
	c := color.New(attrs...)
	c.EnableColor()

	return func(s string) string { return c.Sprint(s) }
}

func plain(s string) string { return s }
