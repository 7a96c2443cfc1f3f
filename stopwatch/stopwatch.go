package stopwatch

import (
	"fmt"
	"sync"
	"time"
)

// A State is the phase a Stopwatch is in.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// A Stopwatch accumulates elapsed time. It is safe for concurrent use.
type Stopwatch struct {
	mu    sync.Mutex
	now   func() time.Time
	start time.Time
	total time.Duration
	state State
}

// An OptFn configures a Stopwatch when constructing a new one.
type OptFn func(*Stopwatch)

// WithClock sets the source of the current time, defaulting to [time.Now].
func WithClock(now func() time.Time) OptFn {
	return func(s *Stopwatch) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs an idle Stopwatch.
func New(opts ...OptFn) *Stopwatch {
	s := &Stopwatch{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start begins or resumes counting. Start is a no-op if s is already running.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		return
	}

	s.start = s.now()
	s.state = Running
}

// Stop pauses counting, adding the time since the last Start to the total.
// Stop is a no-op if s is not running.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return
	}

	s.total += s.now().Sub(s.start)
	s.state = Stopped
}

// Elapsed returns the accumulated time,
// including the current cycle if s is running.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		return s.total + s.now().Sub(s.start)
	}

	return s.total
}

// State returns the phase s is in.
func (s *Stopwatch) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// DurationText formats Elapsed with millisecond precision,
// keeping three fractional digits.
func (s *Stopwatch) DurationText() string {
	return FormatDuration(s.Elapsed())
}

// FormatDuration renders d the way a Stopwatch reports it:
// minutes and seconds are only included once d reaches them.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	minutes := d / time.Minute
	seconds := (d % time.Minute) / time.Second
	millis := (d % time.Second) / time.Millisecond
	micros := (d % time.Millisecond) / time.Microsecond

	switch {
	case minutes > 0:
		return fmt.Sprintf("%dm%ds%d.%03dms", minutes, seconds, millis, micros)
	case seconds > 0:
		return fmt.Sprintf("%ds%d.%03dms", seconds, millis, micros)
	default:
		return fmt.Sprintf("%d.%03dms", millis, micros)
	}
}
