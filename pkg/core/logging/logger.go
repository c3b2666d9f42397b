package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string level to a Level, defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the output encoding
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat converts a string format to a Format, defaulting to text.
func ParseFormat(format string) Format {
	if strings.ToLower(format) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Fields holds structured key/value context for a log entry
type Fields map[string]interface{}

// Logger is a leveled structured logger. The zero value is not usable;
// create one with New or NewWithConfig.
type Logger struct {
	mu     sync.Mutex
	level  Level
	format Format
	output io.Writer
	name   string
}

// Config holds logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// NewWithConfig creates a logger from a full configuration
func NewWithConfig(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Logger{
		level:  cfg.Level,
		format: cfg.Format,
		output: cfg.Output,
		name:   cfg.Name,
	}
}

// New creates a named text logger at info level writing to stdout
func New(name string) *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Name: name})
}

// WithLevel returns a copy of the logger with the given level
func (l *Logger) WithLevel(level Level) *Logger {
	return NewWithConfig(Config{Level: level, Format: l.format, Output: l.output, Name: l.name})
}

// WithFormat returns a copy of the logger with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	return NewWithConfig(Config{Level: l.level, Format: format, Output: l.output, Name: l.name})
}

// WithOutput returns a copy of the logger writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return NewWithConfig(Config{Level: l.level, Format: l.format, Output: w, Name: l.name})
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *Logger) log(level Level, msg string, keysAndValues ...interface{}) {
	if level < l.level {
		return
	}

	entry := entry{
		Time:    time.Now(),
		Level:   level,
		Logger:  l.name,
		Message: msg,
		Fields:  toFields(keysAndValues...),
	}

	var line string
	if l.format == FormatJSON {
		line = entry.json()
	} else {
		line = entry.text()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, line)
}

// entry is a single log record
type entry struct {
	Time    time.Time
	Level   Level
	Logger  string
	Message string
	Fields  Fields
}

func (e entry) text() string {
	var b strings.Builder
	b.WriteString(e.Time.Format("2006-01-02 15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(e.Level.String()))
	b.WriteString("] ")
	if e.Logger != "" {
		b.WriteString(e.Logger)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
		}
	}
	return b.String()
}

func (e entry) json() string {
	payload := map[string]interface{}{
		"time":    e.Time.Format(time.RFC3339Nano),
		"level":   e.Level.String(),
		"message": e.Message,
	}
	if e.Logger != "" {
		payload["logger"] = e.Logger
	}
	for k, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"level":"error","message":"failed to encode log entry: %v"}`, err)
	}
	return string(data)
}

// toFields converts key-value pairs to Fields, skipping non-string keys
func toFields(keysAndValues ...interface{}) Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
