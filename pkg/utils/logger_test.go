package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel) (*IpaHubLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: level, Output: &buf, EnableColor: false})
	return logger, &buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Debug("hidden %s", "detail")
	logger.Info("shown %s", "message")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown message")
	require.Contains(t, out, "INFO")
}

func TestLoggerDebugLevel(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelDebug)

	logger.Debug("debug line")
	logger.Warn("warn line")
	logger.Error("error line")

	out := buf.String()
	require.Contains(t, out, "debug line")
	require.Contains(t, out, "warn line")
	require.Contains(t, out, "error line")
}

func TestLoggerSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelError)

	logger.Info("before")
	logger.SetLevel(LogLevelInfo)
	logger.Info("after")

	out := buf.String()
	require.NotContains(t, out, "before")
	require.Contains(t, out, "after")
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
}
