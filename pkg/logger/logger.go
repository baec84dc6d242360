package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is a log severity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config string into a Level. Unknown values
// fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a minimal leveled logger writing to a file or stdout.
// Handlers, use cases and repositories depend on their own small Logger
// interfaces; this type satisfies all of them.
type Logger struct {
	mu    sync.Mutex
	out   *os.File
	level Level
	owned bool // whether Close should close out
}

// New creates a logger. An empty file path means stdout.
func New(file string, level string) (*Logger, error) {
	l := &Logger{
		out:   os.Stdout,
		level: ParseLevel(level),
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %q: %w", file, err)
		}
		l.out = f
		l.owned = true
	}

	return l, nil
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if !l.owned {
		return nil
	}
	return l.out.Close()
}

func (l *Logger) write(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05"), tag, fmt.Sprintf(format, v...))
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "DEBUG", format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "INFO", format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "WARN", format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "ERROR", format, v...)
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "FATAL", format, v...)
	os.Exit(1)
}
