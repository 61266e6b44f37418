package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLogLevel(slog.LevelInfo)
		SetInternalLogLevel(slog.LevelError)
	})
	return &buf
}

func TestInternalLoggerDefaultsToErrors(t *testing.T) {
	buf := captureOutput(t)
	GetInternalLogger().Warn("quiet")
	require.Empty(t, buf.String())

	GetInternalLogger().Error("loud", "page", 2)
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "loud", record["msg"])
	require.Equal(t, "hlist", record["component"])
	require.EqualValues(t, 2, record["page"])

	buf.Reset()
	SetInternalLogLevel(slog.LevelDebug)
	GetInternalLogger().Debug("now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestSetRawLogLevel(t *testing.T) {
	buf := captureOutput(t)
	SetRawLogLevel("warn")
	GetLogger().Info("hidden")
	GetLogger().Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	for raw, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	} {
		require.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestSetLogPathAndFileOnly(t *testing.T) {
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "nested", "hlist.log")
	require.NoError(t, SetLogPath(path))
	t.Cleanup(CloseLogger)

	SetFileOnly()
	GetLogger().Info("to file", "n", 1)
	CloseLogger()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"msg":"to file"`)
}

func TestSetFileOnlyWithoutFileDiscards(t *testing.T) {
	buf := captureOutput(t)
	SetFileOnly()
	GetLogger().Error("dropped")
	require.Empty(t, buf.String())
}
