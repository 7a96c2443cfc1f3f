package logger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/logger"
)

func TestFormatTimestamp(t *testing.T) {
	for _, tc := range []struct {
		name     string
		t        time.Time
		layout   string
		expected string
	}{
		{"default", now, "", timestamp},
		{"explicit-default", now, logger.DefaultTimestampFormat, timestamp},
		{"zero-padded", time.Date(2021, 1, 1, 1, 2, 3, 4_000_000, time.UTC), "", "01:02:03.004"},
		{"truncates-millis", time.Date(2021, 1, 1, 23, 59, 59, 999_999_999, time.UTC), "", "23:59:59.999"},
		{"custom", now, "2006-01-02 15:04", "2021-03-03 04:05"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.FormatTimestamp(tc.t, tc.layout))
		})
	}
}

func TestFormatMessage(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		// Arrange
		l := newTestLogger(logger.WithLevel(tlog.LevelTrace))

		// Act
		actual := l.FormatMessage(l.BuildRecord(tlog.LevelDebug, "hello world"), false)

		// Assert
		require.Equal(t, "["+timestamp+"][DEBUG] hello world", actual)
	})

	t.Run("Nested-Prefixes", func(t *testing.T) {
		// Arrange
		l := newTestLogger().
			CreatePrefixedLogger("[A]").
			CreatePrefixedLogger("[B]").
			CreatePrefixedLogger("[C]")

		// Act
		actual := l.FormatMessage(l.BuildRecord(tlog.LevelDebug, "hello world"), false)

		// Assert
		require.Equal(t, "["+timestamp+"][DEBUG] [A][B][C] hello world", actual)
	})

	t.Run("Concatenated-Prefixes", func(t *testing.T) {
		// Arrange
		l := newTestLogger().CreatePrefixedLogger("a").CreatePrefixedLogger("b").CreatePrefixedLogger("c")

		// Act
		actual := l.FormatLeadingParts(l.BuildRecord(tlog.LevelError, "hello world"), false)

		// Assert
		require.Equal(t, "["+timestamp+"][ERROR] abc", actual)
	})

	t.Run("Empty-Prefixes-Skipped", func(t *testing.T) {
		// Arrange
		l := newTestLogger().CreatePrefixedLogger("a").CreatePrefixedLogger("").CreatePrefixedLogger("c")

		// Act
		rec := l.BuildRecord(tlog.LevelLog, "x")

		// Assert
		require.Equal(t, []string{"a", "c"}, rec.Prefixes)
		require.Equal(t, "["+timestamp+"][LOG] ac x", l.FormatMessage(rec, false))
	})

	t.Run("No-Level", func(t *testing.T) {
		// Arrange
		l := newTestLogger(logger.WithPrintLevel(false), logger.WithPrefix("app"))

		// Act
		actual := l.FormatMessage(l.BuildRecord(tlog.LevelWarn, "quiet"), false)

		// Assert
		require.Equal(t, "["+timestamp+"] app quiet", actual)
	})

	t.Run("Consistent-Width", func(t *testing.T) {
		// Arrange
		l := newTestLogger(logger.WithConsistentLevelWidth(true))

		for _, tc := range []struct {
			level    tlog.LogLevel
			expected string
		}{
			{tlog.LevelLog, "[" + timestamp + "][LOG  ]"},
			{tlog.LevelWarn, "[" + timestamp + "][WARN ]"},
			{tlog.LevelError, "[" + timestamp + "][ERROR]"},
			{tlog.LogLevel("custom"), "[" + timestamp + "][CUSTOM]"},
		} {
			// Act + Assert
			require.Equal(t, tc.expected, l.FormatLeadingParts(l.BuildRecord(tc.level), false))
		}
	})

	t.Run("Colors", func(t *testing.T) {
		// Arrange
		l := newTestLogger()
		rec := l.BuildRecord(tlog.LevelError, "hello world")

		// Act
		actual := l.FormatMessage(rec, true)

		// Assert
		require.Equal(t, "\x1b[90m["+timestamp+"]\x1b[0m[\x1b[31mERROR\x1b[0m] hello world", actual)
		require.Equal(
			t,
			logger.TimestampDecoration("["+timestamp+"]")+"["+logger.LevelDecoration(tlog.LevelError)("ERROR")+"] hello world",
			actual,
		)
	})

	t.Run("Colors-Disabled-Is-Identity", func(t *testing.T) {
		// Arrange
		l := newTestLogger()

		for _, ll := range tlog.Levels() {
			rec := l.BuildRecord(ll, "x")

			// Act + Assert
			require.NotContains(t, l.FormatMessage(rec, false), "\x1b[")
		}
	})
}

func TestLevelDecoration(t *testing.T) {
	for _, tc := range []struct {
		level    tlog.LogLevel
		expected string
	}{
		{tlog.LevelOff, "x"},
		{tlog.LevelError, "\x1b[31mx\x1b[0m"},
		{tlog.LevelWarn, "\x1b[33mx\x1b[0m"},
		{tlog.LevelLog, "x"},
		{tlog.LevelInfo, "\x1b[32mx\x1b[0m"},
		{tlog.LevelDebug, "\x1b[34mx\x1b[0m"},
		{tlog.LevelTrace, "\x1b[35mx\x1b[0m"},
		{tlog.LogLevel("CUSTOM"), "x"},
		{tlog.LogLevel("WARN"), "\x1b[33mx\x1b[0m"},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, logger.LevelDecoration(tc.level)("x"))
		})
	}
}
