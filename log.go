package hlist

import (
	"io"
	"log/slog"

	"github.com/xqrs/hlist/internal/logging"
)

// GetLogger returns the shared application logger.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogPath additionally writes log records to the file at path.
func SetLogPath(path string) error {
	return logging.SetLogPath(path)
}

// SetLogOutput redirects all log records to w. A nil writer discards them.
func SetLogOutput(w io.Writer) {
	logging.SetOutput(w)
}

// SetLogLevel sets the level of the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses level names such as "debug" or "warn".
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// SetInternalLogLevel controls how much the list itself reports. The default
// is slog.LevelError.
func SetInternalLogLevel(level slog.Level) {
	logging.SetInternalLogLevel(level)
}

// CloseLogger closes the log file opened by SetLogPath.
func CloseLogger() {
	logging.CloseLogger()
}

func internalLogger() *slog.Logger {
	return logging.GetInternalLogger()
}

// SetLogFileOnly stops writing to stderr. Records go to the file set with
// SetLogPath, or nowhere. Call it before a terminal application takes over
// the screen.
func SetLogFileOnly() {
	logging.SetFileOnly()
}

// ParseLogLevel maps "debug", "info", "warn" or "error" to a level. Unknown
// names map to info.
func ParseLogLevel(level string) slog.Level {
	return logging.ParseLevel(level)
}
