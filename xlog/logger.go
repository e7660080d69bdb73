package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewText(LevelInfo))
}

func Debug(msg string, fields ...slog.Attr) {
	Default().Debug(msg, fields...)
}

func Info(msg string, fields ...slog.Attr) {
	Default().Info(msg, fields...)
}

func Warn(msg string, fields ...slog.Attr) {
	Default().Warn(msg, fields...)
}
func Error(msg string, fields ...slog.Attr) {
	Default().Error(msg, fields...)
}

type Logger struct {
	json  bool
	out   io.Writer
	level slog.Level
	s     *slog.Logger
}

const (
	LevelDebug slog.Level = slog.LevelDebug
	LevelInfo  slog.Level = slog.LevelInfo
	LevelWarn  slog.Level = slog.LevelWarn
	LevelError slog.Level = slog.LevelError
)

var (
	Int      = slog.Int
	Any      = slog.Any
	Bool     = slog.Bool
	Str      = slog.String
	Int64    = slog.Int64
	Uint64   = slog.Uint64
	String   = slog.String
	Duration = slog.Duration
)

func Err(e error) slog.Attr {
	return slog.Any("error", e)
}

// Field names the record field a message is about.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}
func File(path string) slog.Attr {
	return slog.String("file", path)
}
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func With(args ...any) *Logger {
	return Default().With(args...)
}
func WithLevel(level slog.Level) *Logger {
	return Default().WithLevel(level)
}
func NewText(level slog.Level) *Logger {
	return newLogger(os.Stdout, level, false)
}
func NewJSON(level slog.Level) *Logger {
	return newLogger(os.Stdout, level, true)
}

// New writes to out instead of stdout.
func New(out io.Writer, level slog.Level, json bool) *Logger {
	return newLogger(out, level, json)
}

func newLogger(out io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{s: slog.New(handler), json: json, out: out, level: level}
}

func Default() *Logger {
	return defaultLogger.Load()
}
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}
func (l *Logger) With(args ...any) *Logger {
	return &Logger{s: l.s.With(args...), json: l.json, out: l.out, level: l.level}
}
func (l *Logger) WithLevel(level slog.Level) *Logger {
	return newLogger(l.out, level, l.json)
}
func (l *Logger) Enabled(level slog.Level) bool {
	return l.s.Enabled(context.Background(), level)
}
func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelDebug, msg, fields...)
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelInfo, msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelWarn, msg, fields...)
}
func (l *Logger) Error(msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), slog.LevelError, msg, fields...)
}
