package config

import (
	"github.com/rshade/cardlist/internal/logging"
)

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`

	// Format is "json" or "console".
	Format string `yaml:"format"`

	// File, when set, sends logs to this file instead of stderr.
	File string `yaml:"file,omitempty"`

	// Caller adds the source file and line to every event.
	Caller bool `yaml:"caller,omitempty"`
}

// ToLoggingConfig converts the section into a logging.Config.
// If File is set the output becomes "file", otherwise "stderr".
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
		Caller: lc.Caller,
	}
}
