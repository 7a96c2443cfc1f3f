package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/xy-planning-network/tlog"
)

const (
	EnvLevel                = "LOG_LEVEL"
	EnvPrefix               = "LOG_PREFIX"
	EnvColor                = "LOG_COLOR"
	EnvTimestampFormat      = "LOG_TIMESTAMP_FORMAT"
	EnvConsistentLevelWidth = "LOG_CONSISTENT_LEVEL_WIDTH"
	EnvPrintLevel           = "LOG_PRINT_LEVEL"
	EnvFile                 = "LOG_FILE"
)

// FromEnv reads a Config from the environment.
// Variables that are unset, empty or cannot be parsed leave their field unset.
func FromEnv() *Config {
	cfg := new(Config)

	if level := tlog.EnvVarOrLogLevel(EnvLevel, ""); level != "" {
		cfg.Level = &level
	}

	cfg.Prefix = envString(EnvPrefix)
	cfg.Color = envBool(EnvColor)
	cfg.TimestampFormat = envString(EnvTimestampFormat)
	cfg.ConsistentLevelWidth = envBool(EnvConsistentLevelWidth)
	cfg.PrintLevel = envBool(EnvPrintLevel)
	cfg.File = envString(EnvFile)

	return cfg
}

// LoadDotEnv loads .env files into the environment, skipping any that do not exist.
// Without paths, LoadDotEnv loads .env in the working directory.
// Variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		err := godotenv.Load(p)
		var pe *fs.PathError
		if err != nil && !errors.As(err, &pe) {
			return err
		}
	}

	return nil
}

func envString(key string) *string {
	if val := tlog.EnvVarOrString(key, ""); val != "" {
		return &val
	}

	return nil
}

// envBool returns nil unless key holds true or false,
// which are the only values EnvVarOrBool does not fall back on the default for.
func envBool(key string) *bool {
	if t, f := tlog.EnvVarOrBool(key, true), tlog.EnvVarOrBool(key, false); t == f {
		return &t
	}

	return nil
}
