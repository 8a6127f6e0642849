package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLogging points the package-level logger at the configured log file.
// Logging to stdout would corrupt the alt-screen TUI, so everything goes to
// the file. The caller owns closing the returned file.
func setupLogging(cfg Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetReportTimestamp(true)
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return f, nil
}
