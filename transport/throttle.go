package transport

import (
	"io"
	"time"

	"github.com/xy-planning-network/tlog/logger"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"
)

// A Throttle Transport passes Records on to another Transport at a limited rate,
// dropping the excess.
//
// Throttle measures the rate against the time of each Record rather than the wall clock.
type Throttle struct {
	next    logger.Transport
	limiter *rate.Limiter
	dropped atomic.Int64
}

// NewThrottle constructs a Throttle letting through one Record per every,
// with bursts of up to burst Records.
func NewThrottle(next logger.Transport, every time.Duration, burst int) *Throttle {
	return &Throttle{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(every), burst),
	}
}

// Pipe passes rec on, unless the limit has been reached.
func (t *Throttle) Pipe(rec logger.Record) {
	if !t.limiter.AllowN(rec.Time, 1) {
		t.dropped.Inc()
		return
	}

	t.next.Pipe(rec)
}

// Dropped returns the number of Records dropped so far.
func (t *Throttle) Dropped() int64 { return t.dropped.Load() }

// Close closes the wrapped Transport, if it can be closed.
func (t *Throttle) Close() error {
	if c, ok := t.next.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
