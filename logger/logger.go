// Package logger carries the diagnostics of the engine. Logging is never
// part of control flow: every call site works the same with Nop.
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{"error", "warning", "info", "debug"}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts error, warning (or warn), info and debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info", "":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarning:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Logger is what the engine logs through.
type Logger interface {
	Error(msg string, args ...any)
	Warning(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Nop discards everything.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Error(string, ...any)   {}
func (nopLogger) Warning(string, ...any) {}
func (nopLogger) Info(string, ...any)    {}
func (nopLogger) Debug(string, ...any)   {}

// Func adapts a plain message callback, as a host application would pass
// in. Messages below level are dropped; key/value args are appended as k=v.
func Func(level Level, fn func(string)) Logger {
	return &funcLogger{level: level, fn: fn}
}

type funcLogger struct {
	level Level
	fn    func(string)
}

func (f *funcLogger) log(l Level, msg string, args []any) {
	if l > f.level || f.fn == nil {
		return
	}
	var b strings.Builder
	b.WriteString(l.String())
	b.WriteString(": ")
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	f.fn(b.String())
}

func (f *funcLogger) Error(msg string, args ...any)   { f.log(LevelError, msg, args) }
func (f *funcLogger) Warning(msg string, args ...any) { f.log(LevelWarning, msg, args) }
func (f *funcLogger) Info(msg string, args ...any)    { f.log(LevelInfo, msg, args) }
func (f *funcLogger) Debug(msg string, args ...any)   { f.log(LevelDebug, msg, args) }

// Format is the slog output format.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat accepts text and json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown log format %q", s)
}

// Slog is a Logger backed by log/slog.
type Slog struct {
	*slog.Logger
}

// NewSlog builds a slog-backed logger writing to w (stderr when nil).
func NewSlog(w io.Writer, level Level, format Format) *Slog {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level: level.slog(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}
	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Slog{Logger: slog.New(h)}
}

// Warning logs at slog's warn level.
func (s *Slog) Warning(msg string, args ...any) {
	s.Logger.Warn(msg, args...)
}

// With returns a logger carrying the given attributes on every record.
func (s *Slog) With(args ...any) *Slog {
	return &Slog{Logger: s.Logger.With(args...)}
}

type ctxKey struct{}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or Nop.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return Nop
}

// InitLogs creates path if needed and clears the .json dumps in it.
func InitLogs(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	files, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
			_ = os.Remove(filepath.Join(path, f.Name()))
		}
	}
	return nil
}

// LogJSON dumps data as indented JSON to path/id.json.
func LogJSON(path, id string, data interface{}) error {
	file := filepath.Join(path, id+".json")
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, bytes, 0644)
}
