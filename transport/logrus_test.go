package transport_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/logger"
	"github.com/xy-planning-network/tlog/transport"
)

func TestLogrus(t *testing.T) {
	t.Run("Forwards", func(t *testing.T) {
		// Arrange
		ll, hook := test.NewNullLogger()
		ll.SetLevel(logrus.TraceLevel)
		l := newTestLogger(logger.WithTransports(transport.NewLogrus(ll)), logger.WithPrefix("[app]"))

		// Act
		l.Warn("disk", map[string]int{"free": 1})

		// Assert
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
		require.Equal(t, `disk {"free":1}`, entry.Message)
		require.Equal(t, "[app]", entry.Data["prefix"])
		require.NotEmpty(t, entry.Data["record_id"])
		require.Equal(t, now, entry.Time)
	})

	t.Run("Levels", func(t *testing.T) {
		for _, tc := range []struct {
			level    tlog.LogLevel
			expected logrus.Level
		}{
			{tlog.LevelError, logrus.ErrorLevel},
			{tlog.LevelWarn, logrus.WarnLevel},
			{tlog.LevelLog, logrus.InfoLevel},
			{tlog.LevelInfo, logrus.InfoLevel},
			{tlog.LevelDebug, logrus.DebugLevel},
			{tlog.LevelTrace, logrus.TraceLevel},
			{tlog.LevelOff, logrus.InfoLevel},
			{tlog.LogLevel("CUSTOM"), logrus.InfoLevel},
		} {
			t.Run(tc.level.String(), func(t *testing.T) {
				// Arrange
				ll, hook := test.NewNullLogger()
				ll.SetLevel(logrus.TraceLevel)
				tr := transport.NewLogrus(ll)

				// Act
				tr.Pipe(newTestLogger().BuildRecord(tc.level, "x"))

				// Assert
				require.Len(t, hook.AllEntries(), 1)
				require.Equal(t, tc.expected, hook.LastEntry().Level)
				require.Nil(t, hook.LastEntry().Data["prefix"])
			})
		}
	})
}
