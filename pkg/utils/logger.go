package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ColorCode returns the ANSI color code for the log level
func (l LogLevel) ColorCode() string {
	switch l {
	case LogLevelDebug:
		return "\033[36m" // Cyan
	case LogLevelInfo:
		return "\033[32m" // Green
	case LogLevelWarn:
		return "\033[33m" // Yellow
	case LogLevelError:
		return "\033[31m" // Red
	default:
		return "\033[0m" // Reset
	}
}

// Logger interface defines the logging contract
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	SetLevel(level LogLevel)
	SetOutput(w io.Writer)
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level       LogLevel
	Output      io.Writer
	EnableColor bool
}

// DefaultLoggerConfig returns a default logger configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:       LogLevelInfo,
		Output:      os.Stderr,
		EnableColor: true,
	}
}

// IpaHubLogger is the main logger implementation
type IpaHubLogger struct {
	config *LoggerConfig
	logger *log.Logger
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config *LoggerConfig) *IpaHubLogger {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	return &IpaHubLogger{
		config: config,
		logger: log.New(config.Output, "", 0),
	}
}

// Debug logs a debug message
func (l *IpaHubLogger) Debug(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelDebug {
		l.log(LogLevelDebug, msg, args...)
	}
}

// Info logs an info message
func (l *IpaHubLogger) Info(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelInfo {
		l.log(LogLevelInfo, msg, args...)
	}
}

// Warn logs a warning message
func (l *IpaHubLogger) Warn(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelWarn {
		l.log(LogLevelWarn, msg, args...)
	}
}

// Error logs an error message
func (l *IpaHubLogger) Error(msg string, args ...interface{}) {
	if l.config.Level <= LogLevelError {
		l.log(LogLevelError, msg, args...)
	}
}

// log performs the actual logging
func (l *IpaHubLogger) log(level LogLevel, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var builder strings.Builder
	if l.config.EnableColor {
		builder.WriteString(level.ColorCode())
	}
	builder.WriteString(fmt.Sprintf("[%s] %s %s", time.Now().Format("2006-01-02 15:04:05"), level.String(), msg))
	if l.config.EnableColor {
		builder.WriteString("\033[0m")
	}

	l.logger.Print(builder.String())
}

// SetLevel sets the logging level
func (l *IpaHubLogger) SetLevel(level LogLevel) {
	l.config.Level = level
}

// SetOutput sets the output writer
func (l *IpaHubLogger) SetOutput(w io.Writer) {
	l.config.Output = w
	l.logger = log.New(w, "", 0)
}

// Global logger instance
var globalLogger Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(config *LoggerConfig) {
	globalLogger = NewLogger(config)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalLogger == nil {
		globalLogger = NewLogger(DefaultLoggerConfig())
	}
	return globalLogger
}

// Convenience functions for global logger
func Debug(msg string, args ...interface{}) {
	GetGlobalLogger().Debug(msg, args...)
}

func Info(msg string, args ...interface{}) {
	GetGlobalLogger().Info(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	GetGlobalLogger().Warn(msg, args...)
}

func Error(msg string, args ...interface{}) {
	GetGlobalLogger().Error(msg, args...)
}
