/*
Package logging configures the process-wide structured logger.  Library
packages log through charmbracelet/log's default logger; this package only
translates configuration into logger state at startup.
*/
package logging

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

var logFile *os.File

// Setup applies the configured level and, when a path is given, redirects
// output to that file instead of stderr.
func Setup(level, path string) error {
	parsed, err := log.ParseLevel(level)

	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	log.SetLevel(parsed)

	if path != "" {
		logFile, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

		if err != nil {
			return fmt.Errorf("open log file %s: %w", path, err)
		}

		log.SetOutput(logFile)
		log.SetReportTimestamp(true)
	}

	return nil
}

// Close releases the log file when one was opened.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
