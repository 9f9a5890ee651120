// Package logging holds the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger used by commands and components that are
// not handed one explicitly.
var L = New(os.Stderr)

// New builds a logger writing to w with timestamps and the calcform prefix.
func New(w io.Writer) *clog.Logger {
	if w == nil {
		w = io.Discard
	}
	return clog.NewWithOptions(w, clog.Options{
		Prefix:          "calcform",
		ReportTimestamp: true,
		Level:           clog.InfoLevel,
	})
}

// SetLevel parses level ("debug", "info", "warn", "error") and applies it to
// L. Empty input leaves the level unchanged.
func SetLevel(level string) error {
	level = strings.TrimSpace(level)
	if level == "" {
		return nil
	}
	parsed, err := clog.ParseLevel(level)
	if err != nil {
		return err
	}
	L.SetLevel(parsed)
	return nil
}
