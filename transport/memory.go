package transport

import (
	"sync"

	"github.com/xy-planning-network/tlog/logger"
)

// A Memory Transport keeps Records in memory, oldest first.
// It is mostly useful in tests, and for showing recent logs on a status page.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	records  []logger.Record
}

// NewMemory constructs a Memory holding at most capacity Records,
// dropping the oldest to make room.
// A capacity of 0 or less keeps everything.
func NewMemory(capacity int) *Memory {
	return &Memory{capacity: capacity}
}

// Pipe stores rec.
func (m *Memory) Pipe(rec logger.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, rec)
	if m.capacity > 0 && len(m.records) > m.capacity {
		n := copy(m.records, m.records[len(m.records)-m.capacity:])
		m.records = m.records[:n]
	}
}

// Records returns a copy of the stored Records.
func (m *Memory) Records() []logger.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]logger.Record, len(m.records))
	copy(out, m.records)

	return out
}

// Messages formats the stored Records without colors.
func (m *Memory) Messages() []string {
	recs := m.Records()
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = origin(rec).FormatMessage(rec, false)
	}

	return out
}

// Len returns the number of stored Records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Reset drops every stored Record.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}

// Close drops every stored Record.
func (m *Memory) Close() error {
	m.Reset()
	return nil
}
