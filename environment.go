package tlog

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	val := os.Getenv(key)
	if strings.ToLower(val) == "true" {
		return true
	}

	if strings.ToLower(val) == "false" {
		return false
	}

	return def
}

// EnvVarOrDuration gets the environment variable for the provided key,
// parses it into a [time.Duration], or, returns
// the default [time.Duration].
func EnvVarOrDuration(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}

// EnvVarOrInt gets the environment variable for the provided key,
// creates an int from the retrieved value,
// or returns the provided default
// if the value is not a valid int.
func EnvVarOrInt(key string, def int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return val
}

// EnvVarOrLogLevel gets the environment variable for the provided key,
// creates a [LogLevel] from the retrieved value,
// or returns the provided default [LogLevel].
//
// Numeric values are read as priorities, so LOG_LEVEL=2 is the same as LOG_LEVEL=warn.
// Unlike [NewLogLevel], labels and priorities outside the canonical set fall back to the default.
func EnvVarOrLogLevel(key string, def LogLevel) LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	if p, err := strconv.Atoi(val); err == nil {
		if p < 0 || p >= len(levels) {
			return def
		}

		return FromPriority(p)
	}

	ll := NewLogLevel(val)
	if err := ll.Valid(); err != nil {
		return def
	}

	return ll
}

// EnvVarOrString gets the environment variable for the provided key or the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}
