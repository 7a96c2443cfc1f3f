package transport

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/logger"
)

// A Logrus Transport forwards Records to a *logrus.Logger,
// for applications whose other components already log with logrus.
//
// The Record's args become the entry's message,
// and its prefixes and ID become the "prefix" and "record_id" fields.
type Logrus struct {
	l *logrus.Logger
}

// NewLogrus constructs a Logrus forwarding to l, or to logrus.StandardLogger if l is nil.
func NewLogrus(l *logrus.Logger) *Logrus {
	if l == nil {
		l = logrus.StandardLogger()
	}

	return &Logrus{l: l}
}

// Pipe forwards rec.
func (t *Logrus) Pipe(rec logger.Record) {
	fields := logrus.Fields{"record_id": rec.ID.String()}
	if prefix := strings.Join(rec.Prefixes, ""); prefix != "" {
		fields["prefix"] = prefix
	}

	t.l.WithFields(fields).WithTime(rec.Time).Log(logrusLevel(rec.Level), rec.ArgsText)
}

// logrusLevel maps level onto logrus.
// logrus has no level matching [tlog.LevelLog], which therefore maps to info,
// like anything outside the canonical set.
func logrusLevel(level tlog.LogLevel) logrus.Level {
	switch tlog.NewLogLevel(level.String()) {
	case tlog.LevelError:
		return logrus.ErrorLevel
	case tlog.LevelWarn:
		return logrus.WarnLevel
	case tlog.LevelDebug:
		return logrus.DebugLevel
	case tlog.LevelTrace:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
