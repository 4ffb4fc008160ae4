package guikit

import (
	"log/slog"
	"os"
)

// logLevel controls the level of every logger created by this module.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// guiLogger is the logger for host widget debugging.
var guiLogger = NewLogger("gui")

// SetVerbose enables or disables debug logging for all guikit components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// NewLogger returns a stderr text logger tagged with component that follows
// the level set by SetVerbose.
func NewLogger(component string) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	return slog.New(h).With("component", component)
}
