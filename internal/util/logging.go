// Package util provides common utilities including logging helpers,
// file system locations, and small generic helpers.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// DiscardLogs silences the standard logger. The TUI owns stdout and stderr,
// so logs are dropped unless a log file is configured.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}
