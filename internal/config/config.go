// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// ListingIsPiped returns whether the listing is written to the console
// while the console is redirected to a file or pipe. Informational logging
// would be mixed into the listing in that case.
func ListingIsPiped(output string) bool {
	if output != "" {
		return false
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}
