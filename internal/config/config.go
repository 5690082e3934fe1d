// Package config holds the settings that control how a TunaScene session is
// run, and reads them from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvScene     = "TUNASCENE_SCENE"
	EnvWidth     = "TUNASCENE_WIDTH"
	EnvLogLevel  = "TUNASCENE_LOG_LEVEL"
	EnvLogFormat = "TUNASCENE_LOG_FORMAT"
)

const (
	DefaultWidth     = 80
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
)

// LogFormat is the format that log entries are written in.
type LogFormat string

func (lf LogFormat) String() string {
	return string(lf)
}

const (
	LogFormatNone LogFormat = ""
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat parses a string into a LogFormat. Case is ignored.
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case LogFormatText.String():
		return LogFormatText, nil
	case LogFormatJSON.String():
		return LogFormatJSON, nil
	default:
		return LogFormatNone, fmt.Errorf("log format not one of 'text' or 'json': %q", s)
	}
}

// logLevels is every accepted log level name.
var logLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// Config is a configuration for a session.
type Config struct {

	// SceneFile is the path to a TQS file that defines the scene. If empty,
	// the built-in default scene is used.
	SceneFile string

	// ScriptFile is the path to a file of commands, one per line, to run
	// instead of reading commands from the player.
	ScriptFile string

	// ForceDirect forces reading commands directly from stdin instead of
	// through readline even when attached to a terminal.
	ForceDirect bool

	// Width is the column to wrap output at. If not set it will default to 80.
	Width int

	// LogLevel is the minimum level of log entry that is written. If not set
	// it will default to "warn".
	LogLevel string

	// LogFormat is how log entries are written. If not set it will default to
	// text.
	LogFormat LogFormat
}

// FromEnv returns a Config with any values given in environment variables
// set. Values that are not given are left unset. An error is returned if a
// variable is given but is not valid.
func FromEnv() (Config, error) {
	var cfg Config

	cfg.SceneFile = os.Getenv(EnvScene)
	cfg.LogLevel = os.Getenv(EnvLogLevel)

	if widthStr := os.Getenv(EnvWidth); widthStr != "" {
		w, err := strconv.Atoi(widthStr)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not a valid number", EnvWidth, widthStr)
		}
		cfg.Width = w
	}

	if formatStr := os.Getenv(EnvLogFormat); formatStr != "" {
		lf, err := ParseLogFormat(formatStr)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
		cfg.LogFormat = lf
	}

	return cfg, nil
}

// FillDefaults returns a new Config identical to cfg but with unset values
// set to their defaults.
func (cfg Config) FillDefaults() Config {
	newCFG := cfg

	if newCFG.Width == 0 {
		newCFG.Width = DefaultWidth
	}
	if newCFG.LogLevel == "" {
		newCFG.LogLevel = DefaultLogLevel
	}
	if newCFG.LogFormat == LogFormatNone {
		newCFG.LogFormat = DefaultLogFormat
	}

	return newCFG
}

// Validate returns an error if the Config has invalid field values set. Empty
// and unset values are considered invalid; if defaults are intended to be
// used, call Validate on the return value of FillDefaults.
func (cfg Config) Validate() error {
	if cfg.Width < 2 {
		return fmt.Errorf("width: must be at least 2 but is %d", cfg.Width)
	}

	validLevel := false
	for _, lvl := range logLevels {
		if strings.ToLower(cfg.LogLevel) == lvl {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("log level: not a valid level: %q", cfg.LogLevel)
	}

	if _, err := ParseLogFormat(cfg.LogFormat.String()); err != nil {
		return fmt.Errorf("log format: %w", err)
	}

	// SceneFile and ScriptFile are checked when they are opened

	return nil
}
