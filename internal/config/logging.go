package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/catalogview/internal/logging"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = logging.FormatConsole
)

// ErrInvalidLogFormat is returned for a logging.format other than json or console.
var ErrInvalidLogFormat = errors.New("logging.format must be json or console")

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Validate checks the level and format names.
func (lc LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch lc.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, lc.Format)
	}
}

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ToInteractiveLoggingConfig is ToLoggingConfig for full-screen sessions: logs go to
// the configured file, or are discarded, so they never draw over the terminal UI.
func (lc *LoggingConfig) ToInteractiveLoggingConfig() logging.Config {
	cfg := lc.ToLoggingConfig()
	if cfg.Output != logging.OutputFile {
		cfg.Output = logging.OutputDiscard
	}
	return cfg
}
