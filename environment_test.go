package tlog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tlog"
)

func TestEnvVarOrLogLevel(t *testing.T) {
	const key = "TLOG_TEST_LOG_LEVEL"
	for _, tc := range []struct {
		name     string
		val      string
		expected tlog.LogLevel
	}{
		{"unset", "", tlog.LevelInfo},
		{"named", "warn", tlog.LevelWarn},
		{"upper", "TRACE", tlog.LevelTrace},
		{"numeric", "1", tlog.LevelError},
		{"numeric-out-of-range", "42", tlog.LevelInfo},
		{"numeric-negative", "-1", tlog.LevelInfo},
		{"numeric-off", "0", tlog.LevelOff},
		{"unknown", "verbose", tlog.LevelInfo},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(key, tc.val)
			require.Equal(t, tc.expected, tlog.EnvVarOrLogLevel(key, tlog.LevelInfo))
		})
	}
}

func TestEnvVarOr(t *testing.T) {
	t.Setenv("TLOG_TEST_BOOL", "FALSE")
	require.False(t, tlog.EnvVarOrBool("TLOG_TEST_BOOL", true))
	require.True(t, tlog.EnvVarOrBool("TLOG_TEST_MISSING", true))

	t.Setenv("TLOG_TEST_INT", "12")
	require.Equal(t, 12, tlog.EnvVarOrInt("TLOG_TEST_INT", 1))
	t.Setenv("TLOG_TEST_INT", "twelve")
	require.Equal(t, 1, tlog.EnvVarOrInt("TLOG_TEST_INT", 1))

	t.Setenv("TLOG_TEST_DURATION", "1500ms")
	require.Equal(t, 1500*time.Millisecond, tlog.EnvVarOrDuration("TLOG_TEST_DURATION", time.Second))

	t.Setenv("TLOG_TEST_STRING", "")
	require.Equal(t, "def", tlog.EnvVarOrString("TLOG_TEST_STRING", "def"))
}
