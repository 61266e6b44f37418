// Package logging holds the JSON loggers shared by the list packages.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	output = &switchWriter{w: os.Stderr}

	logFile *os.File
	fileMu  sync.Mutex

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

func init() {
	internalLevelVar.Set(slog.LevelError)
}

// switchWriter lets the destination change after the handlers were built.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// SetOutput redirects both loggers to w.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	output.set(w)
}

// SetLogPath appends log records to the file at path, creating parent
// directories as needed. Records keep going to stderr as well. When the file
// cannot be opened the loggers stay on stderr and the error is returned.
func SetLogPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return err
	}

	fileMu.Lock()
	previous := logFile
	logFile = f
	fileMu.Unlock()

	output.set(io.MultiWriter(os.Stderr, f))
	if previous != nil {
		previous.Close()
	}
	return nil
}

// SetFileOnly writes records to the log file only. A terminal application
// calls it once the screen owns stderr.
func SetFileOnly() {
	fileMu.Lock()
	f := logFile
	fileMu.Unlock()
	if f == nil {
		output.set(io.Discard)
		return
	}
	output.set(f)
}

// GetLogger returns the logger for application code.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: levelVar}))
	})
	return logger
}

// GetInternalLogger returns the logger used by the library itself. It only
// reports errors unless SetInternalLogLevel lowers the threshold.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: internalLevelVar})).
			With("component", "hlist")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLevel maps a settings string to a level. Unknown values map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLevel(raw))
}

// CloseLogger closes the log file, if any, and falls back to stderr.
func CloseLogger() {
	fileMu.Lock()
	f := logFile
	logFile = nil
	fileMu.Unlock()
	if f != nil {
		output.set(os.Stderr)
		f.Close()
	}
}
