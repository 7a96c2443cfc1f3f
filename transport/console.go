package transport

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/logger"
)

// A Console Transport prints Records to the terminal.
//
// Errors and warnings go to stderr, everything else to stdout.
// A Record prints as its leading parts, colored if its Logger has colors enabled,
// followed by its args as fmt prints them.
type Console struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

// A ConsoleOptFn is a functional option configuring a Console when constructing a new one.
type ConsoleOptFn func(*Console)

// WithStdout replaces os.Stdout.
func WithStdout(w io.Writer) ConsoleOptFn {
	return func(c *Console) {
		if w != nil {
			c.stdout = w
		}
	}
}

// WithStderr replaces os.Stderr.
func WithStderr(w io.Writer) ConsoleOptFn {
	return func(c *Console) {
		if w != nil {
			c.stderr = w
		}
	}
}

// NewConsole constructs a Console.
func NewConsole(opts ...ConsoleOptFn) *Console {
	c := &Console{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Pipe prints rec.
func (c *Console) Pipe(rec logger.Record) {
	l := origin(rec)

	out := make([]any, 0, len(rec.Args)+1)
	out = append(out, l.FormatLeadingParts(rec, l.EnableColor()))
	out = append(out, rec.Args...)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.writerFor(rec.Level), out...)
}

// writerFor picks the stream for level.
// Levels outside the canonical set print where [tlog.LevelLog] does.
func (c *Console) writerFor(level tlog.LogLevel) io.Writer {
	switch tlog.NewLogLevel(level.String()) {
	case tlog.LevelError, tlog.LevelWarn:
		return c.stderr
	default:
		return c.stdout
	}
}
