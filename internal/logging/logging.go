// Package logging builds the slog logger used by the CLI. Records are
// rendered by charmbracelet/log and written to stderr so stdout carries
// only secret values.
package logging

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Flags holds the CLI flags that affect logging behavior.
type Flags struct {
	Level   string // "debug", "info", "warn" or "error"; empty means warn
	Verbose bool   // forces debug
	JSON    bool
}

// New returns a slog.Logger writing to w.
func New(w io.Writer, f Flags) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           level(f),
		ReportTimestamp: true,
	})
	if f.JSON {
		handler.SetFormatter(log.JSONFormatter)
	}
	return slog.New(handler)
}

func level(f Flags) log.Level {
	if f.Verbose {
		return log.DebugLevel
	}
	lvl, err := log.ParseLevel(f.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
