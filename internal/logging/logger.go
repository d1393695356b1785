// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ConsoleTimeFormat is the short timestamp used by console output.
const ConsoleTimeFormat = "15:04:05"

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	var output io.Writer = w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues creates a stderr logger from string settings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// AVDEDIT_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// AVDEDIT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("AVDEDIT_LOG_LEVEL"), os.Getenv("AVDEDIT_LOG_FORMAT"))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewWithFile creates a logger that writes to a rotating file, to stderr,
// to both, or nowhere. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	var fileErr error
	if fileCfg.Enabled && fileCfg.LogDir != "" {
		rotator, err := NewLogRotator(fileCfg.LogDir, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
		if err != nil {
			fileErr = fmt.Errorf("open log file: %w", err)
		} else {
			writers = append(writers, rotator)
			cleanup = func() {
				if closeErr := rotator.Close(); closeErr != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", closeErr)
				}
			}
		}
	}

	if len(writers) == 0 {
		return zerolog.Nop(), cleanup, fileErr
	}

	// JSON in files keeps them greppable; console only when stderr is the sole sink.
	fmtCfg := cfg
	if len(writers) > 1 || !fileCfg.WriteToStderr {
		fmtCfg.Format = "json"
	}
	return newWithWriter(fmtCfg, io.MultiWriter(writers...)), cleanup, fileErr
}
