package transport

import "github.com/xy-planning-network/tlog/logger"

// origin returns the Logger rec was written to,
// or a default Logger to format it with if rec was built by hand.
func origin(rec logger.Record) *logger.Logger {
	if rec.Logger != nil {
		return rec.Logger
	}

	return logger.New()
}
