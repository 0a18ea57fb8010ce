// Package logger provides Levikno's pattern-formatted, leveled, colored
// logging. The engine holds two instances side by side: a core logger for
// its own diagnostics and a client logger the embedding application can log
// through without mixing its output format with the engine's.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Level is a logging severity, ordered low to high.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

var levelColor = map[Level]termenv.Color{
	LevelTrace: termenv.ANSIBrightBlack,
	LevelDebug: termenv.ANSICyan,
	LevelInfo:  termenv.ANSIGreen,
	LevelWarn:  termenv.ANSIYellow,
	LevelError: termenv.ANSIRed,
	LevelFatal: termenv.ANSIBrightRed,
}

// DefaultPattern renders "[HH:MM:SS] LEVEL message".
const DefaultPattern = "[%T] %L %M"

// Logger formats and writes leveled records to an output stream.
// Logger is safe for concurrent use; writes are serialized line-by-line.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	profile termenv.Profile
	pattern string
	level   Level
	name    string
	enabled bool
}

// Config controls how a Logger is constructed.
type Config struct {
	Name    string // prefixed into %N expansions, e.g. "core" or "client"
	Pattern string // defaults to DefaultPattern when empty
	Level   Level  // minimum level that is emitted
	Enabled bool
	Out     io.Writer // defaults to os.Stdout when nil
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Logger{
		out:     out,
		profile: termenv.EnvColorProfile(),
		pattern: pattern,
		level:   cfg.Level,
		name:    cfg.Name,
		enabled: cfg.Enabled,
	}
}

// SetEnabled toggles whether the logger emits anything at all. createContext's
// "enabled" logging flag maps directly onto this.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// Enabled reports whether the logger currently emits output.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	line := l.expand(level, msg)
	fmt.Fprintln(l.out, line)
}

// expand replaces the recognized pattern directives:
//
//	%T - HH:MM:SS timestamp
//	%L - level name
//	%N - logger name
//	%M - message body
func (l *Logger) expand(level Level, msg string) string {
	var b strings.Builder
	r := strings.NewReplacer(
		"%T", time.Now().Format("15:04:05"),
		"%L", l.colorize(level, level.String()),
		"%N", l.name,
		"%M", msg,
	)
	b.WriteString(r.Replace(l.pattern))
	return b.String()
}

func (l *Logger) colorize(level Level, text string) string {
	color, ok := levelColor[level]
	if !ok || l.profile == termenv.Ascii {
		return text
	}
	return termenv.String(text).Foreground(color).String()
}

func (l *Logger) Trace(format string, args ...any) { l.log(LevelTrace, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
func (l *Logger) Fatal(format string, args ...any) { l.log(LevelFatal, format, args...) }

// ErrorLoc logs an error message with the caller's file/line prefixed, per
// spec.md §7 ("a descriptive message is logged at error level including the
// caller's file/line").
func (l *Logger) ErrorLoc(file string, line int, format string, args ...any) {
	msg := fmt.Sprintf("%s:%d: %s", file, line, fmt.Sprintf(format, args...))
	l.log(LevelError, "%s", msg)
}
