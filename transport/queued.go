package transport

import (
	"sync"

	"github.com/xy-planning-network/tlog/logger"
)

// A Queued Transport hands Records to a writer,
// holding on to them for as long as it has none.
//
// Records are always written in the order they were received:
// setting a writer first flushes the queue, then lets Records through as they arrive.
//
// The writer is called with the Queued's lock held and must not call back into it.
type Queued struct {
	mu     sync.Mutex
	writer func(logger.Record)
	queue  []logger.Record
}

// NewQueued constructs a Queued writing to writer.
// A nil writer queues every Record until SetWriter is called.
func NewQueued(writer func(logger.Record)) *Queued {
	q := new(Queued)
	q.SetWriter(writer)

	return q
}

// SetWriter replaces the writer, flushing queued Records to it.
// Setting a nil writer goes back to queueing.
//
// The queue is emptied even if writer panics partway through a flush.
func (q *Queued) SetWriter(writer func(logger.Record)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.writer = writer
	if writer == nil {
		return
	}

	queue := q.queue
	q.queue = nil
	for _, rec := range queue {
		writer(rec)
	}
}

// Pipe writes rec, or queues it if there is no writer.
func (q *Queued) Pipe(rec logger.Record) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.writer == nil {
		q.queue = append(q.queue, rec)
		return
	}

	q.writer(rec)
}

// Len returns the number of Records waiting for a writer.
func (q *Queued) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}
