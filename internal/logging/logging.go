// Package logging builds the leveled console logger used across mdtodo.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/nakachan-ing/mdtodo/internal/model"
)

const Prefix = "mdtodo"

// New returns a stderr logger configured from cfg. Unknown levels and
// formats fall back to info and text.
func New(cfg model.LogConfig) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

func NewWithWriter(w io.Writer, cfg model.LogConfig) *log.Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseFormatter(cfg.Format),
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          Prefix,
	})
}

func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("❌ Unknown log level: %q", level)
}

func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
