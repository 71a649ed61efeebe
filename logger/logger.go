// Package logger provides structured logging for the conversation engine.
//
// This package wraps Go's standard log/slog with convenience functions for:
//   - LLM API call logging (requests, responses, errors)
//   - Level-based verbosity control via the LOG_LEVEL environment variable
//
// All exported functions use the global DefaultLogger which can be configured
// for different output formats and log levels.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var (
	// DefaultLogger is the global structured logger instance.
	// It is safe for concurrent use and initialized with slog.LevelInfo by default.
	DefaultLogger *slog.Logger
)

func init() {
	// Check LOG_LEVEL environment variable
	level := slog.LevelInfo
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		switch strings.ToLower(envLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	DefaultLogger = slog.New(handler)
}

// SetLevel changes the logging level for all subsequent log operations.
// This is safe for concurrent use as it replaces the entire logger instance.
func SetLevel(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	DefaultLogger = slog.New(handler)
}

// SetVerbose enables debug-level logging when verbose is true, otherwise sets info-level.
// This is a convenience wrapper around SetLevel for command-line verbose flags.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

// Info logs an informational message with structured key-value attributes.
// Args should be provided in key-value pairs: key1, value1, key2, value2, ...
func Info(msg string, args ...any) {
	DefaultLogger.Info(msg, args...)
}

// Debug logs a debug-level message with structured attributes.
// Debug messages are only output when the log level is set to LevelDebug or lower.
func Debug(msg string, args ...any) {
	DefaultLogger.Debug(msg, args...)
}

// Warn logs a warning message with structured attributes.
// Use for recoverable errors or unexpected but non-critical situations.
func Warn(msg string, args ...any) {
	DefaultLogger.Warn(msg, args...)
}

// Error logs an error message with structured attributes.
// Use for errors that affect operation but don't cause complete failure.
func Error(msg string, args ...any) {
	DefaultLogger.Error(msg, args...)
}

// LLMCall logs an outgoing LLM API call with structured fields for observability.
// Additional attributes can be passed as key-value pairs after the required parameters.
func LLMCall(provider, role string, messages int, attrs ...any) {
	allAttrs := make([]any, 0, 6+len(attrs))
	allAttrs = append(allAttrs,
		"provider", provider,
		"role", role,
		"messages", messages,
	)
	allAttrs = append(allAttrs, attrs...)
	DefaultLogger.Debug("LLM call", allAttrs...)
}

// LLMResponse logs a completed LLM API call with its measured latency.
func LLMResponse(provider, role string, latencySeconds float64, attrs ...any) {
	allAttrs := make([]any, 0, 6+len(attrs))
	allAttrs = append(allAttrs,
		"provider", provider,
		"role", role,
		"latency_s", latencySeconds,
	)
	allAttrs = append(allAttrs, attrs...)
	DefaultLogger.Debug("LLM response", allAttrs...)
}

// LLMError logs a failed LLM API call. The conversation continues with an
// empty utterance, so this is a warning-level event rather than fatal.
func LLMError(provider, role string, err error) {
	DefaultLogger.Warn("LLM call failed",
		"provider", provider,
		"role", role,
		"error", err.Error(),
	)
}
