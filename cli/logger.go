package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a console logger writing to stderr. Verbose switches the
// level from INFO to DEBUG. Library packages stay silent; all operational
// reporting goes through this logger in the command-line tools.
func NewLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}
