// Package log provides structured logging with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dsbox/dsbox/filesystem"
	"github.com/dsbox/dsbox/key"
	"github.com/dsbox/dsbox/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers do not need to import logrus for structured entries.
type Fields = logrus.Fields

var (
	// enabled indicates the persistent logging state for the active application instance.
	enabled bool

	logger = newDiscardLogger()
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup initializes the log file, formatter and level from the global configuration.
// If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	f, err := filesystem.API().OpenFile(filepath.Join(dir, filename), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level := viper.GetString(key.LogsLevel)
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	logger = l
	if err != nil {
		Warnf("unknown log level %q, falling back to info", level)
	}
	return nil
}

// WithFields returns an entry carrying fields; it discards output while logging is disabled.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
