// Package observability provides the structured logger for scaffold runs.
// It mirrors the narration/logging split: narration is product output on
// stdout, these logs are operational and go to stderr by default.
package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// LogLevel defines the logging verbosity level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelError
)

// ParseLevel maps a config string to a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogLevelDebug
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// LogFormat defines the output format for logs.
type LogFormat int

const (
	LogFormatHuman LogFormat = iota
	LogFormatJSON
)

// ParseFormat maps a config string to a LogFormat, defaulting to human.
func ParseFormat(s string) LogFormat {
	if s == "json" {
		return LogFormatJSON
	}
	return LogFormatHuman
}

// Logger writes leveled, structured log lines in human or JSON format.
type Logger struct {
	level  LogLevel
	format LogFormat
	out    io.Writer
	now    func() time.Time
}

// NewLogger creates a logger writing to stderr.
func NewLogger(level LogLevel, format LogFormat) *Logger {
	return &Logger{level: level, format: format, out: os.Stderr, now: time.Now}
}

// WithOutput returns a copy of the logger writing to the given writer.
// Used by tests to capture output.
func (l *Logger) WithOutput(out io.Writer) *Logger {
	clone := *l
	clone.out = out
	return &clone
}

// LogDebug logs a debug message with structured fields.
func (l *Logger) LogDebug(ctx context.Context, message string, fields map[string]interface{}) {
	l.log(LogLevelDebug, "debug", message, fields)
}

// LogInfo logs an informational message with structured fields.
func (l *Logger) LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	l.log(LogLevelInfo, "info", message, fields)
}

// LogWarning logs a warning message with structured fields. Warnings are
// emitted at the info threshold.
func (l *Logger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	l.log(LogLevelInfo, "warning", message, fields)
}

// LogError logs an error message with structured fields.
func (l *Logger) LogError(ctx context.Context, message string, fields map[string]interface{}) {
	l.log(LogLevelError, "error", message, fields)
}

func (l *Logger) log(level LogLevel, label, message string, fields map[string]interface{}) {
	if level < l.level {
		return
	}

	if l.format == LogFormatJSON {
		entry := map[string]interface{}{
			"level":     label,
			"timestamp": l.now().UTC().Format(time.RFC3339),
			"message":   message,
		}
		for k, v := range fields {
			entry[k] = v
		}
		line, err := json.Marshal(entry)
		if err != nil {
			fmt.Fprintf(l.out, `{"level":"error","message":"log marshal failed: %s"}`+"\n", err)
			return
		}
		fmt.Fprintln(l.out, string(line))
		return
	}

	fmt.Fprintf(l.out, "[%s] %s%s\n", upper(label), message, humanFields(fields))
}

// humanFields renders fields as " (k=v, k=v)" with deterministic key order.
func humanFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := " ("
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%v", k, fields[k])
	}
	return out + ")"
}

func upper(label string) string {
	switch label {
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "warning":
		return "WARN"
	default:
		return "ERROR"
	}
}
