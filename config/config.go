package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/titanous/json5"
	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/logger"
)

// A Config holds Logger settings. A nil field is not set.
type Config struct {
	Level                *tlog.LogLevel `json:"level,omitempty"`
	Prefix               *string        `json:"prefix,omitempty"`
	Color                *bool          `json:"color,omitempty"`
	TimestampFormat      *string        `json:"timestampFormat,omitempty"`
	ConsistentLevelWidth *bool          `json:"consistentLevelWidth,omitempty"`
	PrintLevel           *bool          `json:"printLevel,omitempty"`
	File                 *string        `json:"file,omitempty"`
}

// Load parses the JSON5 file at path on fsys.
//
// Load returns [tlog.ErrNotExist] if there is no such file,
// and [tlog.ErrBadConfig] if it cannot be parsed or names an unknown level.
func Load(fsys afero.Fs, path string) (*Config, error) {
	b, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: config file %s", tlog.ErrNotExist, path)
	}

	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := new(Config)
	if err := json5.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%w: config file %s: %s", tlog.ErrBadConfig, path, err)
	}

	if cfg.Level != nil {
		level := tlog.NewLogLevel(cfg.Level.String())
		if err := level.Valid(); err != nil {
			return nil, fmt.Errorf("%w: config file %s: %s", tlog.ErrBadConfig, path, err)
		}
		cfg.Level = &level
	}

	return cfg, nil
}

// Merge returns a copy of c with every field set on over replacing its own.
// Either may be nil.
func (c *Config) Merge(over *Config) *Config {
	out := new(Config)
	if c != nil {
		*out = *c
	}

	if over == nil {
		return out
	}

	if over.Level != nil {
		out.Level = over.Level
	}
	if over.Prefix != nil {
		out.Prefix = over.Prefix
	}
	if over.Color != nil {
		out.Color = over.Color
	}
	if over.TimestampFormat != nil {
		out.TimestampFormat = over.TimestampFormat
	}
	if over.ConsistentLevelWidth != nil {
		out.ConsistentLevelWidth = over.ConsistentLevelWidth
	}
	if over.PrintLevel != nil {
		out.PrintLevel = over.PrintLevel
	}
	if over.File != nil {
		out.File = over.File
	}

	return out
}

// Options converts the fields set on c into options for [logger.New].
// File is not a Logger setting and is left for the caller to act on.
func (c *Config) Options() []logger.LoggerOptFn {
	if c == nil {
		return nil
	}

	var opts []logger.LoggerOptFn
	if c.Level != nil {
		opts = append(opts, logger.WithLevel(*c.Level))
	}
	if c.Prefix != nil {
		opts = append(opts, logger.WithPrefix(*c.Prefix))
	}
	if c.Color != nil {
		opts = append(opts, logger.WithColor(*c.Color))
	}
	if c.TimestampFormat != nil {
		opts = append(opts, logger.WithTimestampFormat(*c.TimestampFormat))
	}
	if c.ConsistentLevelWidth != nil {
		opts = append(opts, logger.WithConsistentLevelWidth(*c.ConsistentLevelWidth))
	}
	if c.PrintLevel != nil {
		opts = append(opts, logger.WithPrintLevel(*c.PrintLevel))
	}

	return opts
}
