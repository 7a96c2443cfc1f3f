package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/xy-planning-network/tlog"
)

// A Record is the snapshot of a single call to [*Logger.Write].
//
// A Record is built once, before any Transport sees it,
// and must be treated as read-only by every Transport it is handed to.
// Transports queuing Records may hold onto them indefinitely.
type Record struct {
	// ID uniquely identifies the Record.
	ID uuid.UUID

	// Time is when the Record was built.
	Time time.Time

	// Timestamp is Time rendered with the originating Logger's timestamp format.
	Timestamp string

	// Level is the level the Record was written at.
	// Level may be a label outside of the canonical set.
	Level tlog.LogLevel

	// Prefixes lists the prefixes set on the originating Logger and its ancestors,
	// root first, skipping empty ones.
	Prefixes []string

	// Args holds the arguments exactly as the caller passed them.
	Args []any

	// ArgsText is Args rendered by StringifyArgs.
	ArgsText string

	// Logger is the Logger the Record was written to.
	// Transports use it to format the Record.
	Logger *Logger
}

// A Transport receives every Record written to the Logger it is attached to,
// or to any descendant of that Logger.
//
// Pipe must not panic; a Transport is responsible for handling its own failures.
// A Transport implementing [io.Closer] is closed by [*Logger.Destroy].
type Transport interface {
	Pipe(rec Record)
}

// The TransportFunc type is an adapter allowing the use of ordinary functions as Transports.
type TransportFunc func(rec Record)

// Pipe calls f(rec).
func (f TransportFunc) Pipe(rec Record) { f(rec) }

// newRecordID generates a random ID, settling for [uuid.Nil]
// rather than failing a log call when no randomness is available.
func newRecordID() uuid.UUID {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil
	}

	return id
}
