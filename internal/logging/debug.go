package logging

import (
	"fmt"
	"os"
	"time"
)

// DebugEnabled returns true if debug mode is enabled via WAKA_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("WAKA_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}

// Infof prints a timestamped operational message to stderr. Used for
// long-running flows (collection, backfill, scheduler) where progress
// should be visible without debug mode.
func Infof(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s INFO "+format+"\n", append([]interface{}{time.Now().UTC().Format(time.RFC3339)}, args...)...)
}

// Errorf prints a timestamped error message to stderr.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s ERROR "+format+"\n", append([]interface{}{time.Now().UTC().Format(time.RFC3339)}, args...)...)
}
