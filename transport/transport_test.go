package transport_test

import (
	"time"

	"github.com/xy-planning-network/tlog/logger"
)

const timestamp = "04:05:06.789"

var now = time.Date(2021, time.March, 3, 4, 5, 6, 789_000_000, time.UTC)

func newTestLogger(opts ...logger.LoggerOptFn) *logger.Logger {
	base := []logger.LoggerOptFn{
		logger.WithClock(func() time.Time { return now }),
		logger.WithColor(false),
	}

	return logger.New(append(base, opts...)...)
}
