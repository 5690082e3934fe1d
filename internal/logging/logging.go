// Package logging sets up the structured logger used by the engine and the
// CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/tunascene/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a logger with the level and format given in cfg. Entries are
// written to w, or to stderr if w is nil; stdout is left for the game.
func New(cfg config.Config, w io.Writer) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)

	switch cfg.LogFormat {
	case config.LogFormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return log, nil
}

// Discard returns a logger that writes nothing. It is for callers that do not
// want logging at all.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
