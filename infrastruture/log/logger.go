// Package logger provides a leveled logger that tags every line with a
// component prefix and color, e.g. "[APP] [INFO] Connected to MongoDB".
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

var _ i.Logger = &Logger{}

// Logger writes leveled, prefixed lines through slog.
type Logger struct {
	slog *slog.Logger
}

// New creates a Logger writing to w. prefix names the component and color is
// an ANSI color sequence applied to the prefix.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}
	h := &prefixHandler{
		prefix: prefix,
		color:  color,
		level:  slog.LevelDebug,
		mu:     &sync.Mutex{},
		w:      w,
	}
	return &Logger{slog: slog.New(h)}, nil
}

// SetLevel drops messages below level.
func (l *Logger) SetLevel(level slog.Level) {
	if h, ok := l.slog.Handler().(*prefixHandler); ok {
		h.mu.Lock()
		h.level = level
		h.mu.Unlock()
	}
}

func (l *Logger) Info(msg string)    { l.slog.Info(msg) }
func (l *Logger) Warning(msg string) { l.slog.Warn(msg) }
func (l *Logger) Error(msg string)   { l.slog.Error(msg) }
func (l *Logger) Debug(msg string)   { l.slog.Debug(msg) }

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// prefixHandler renders records as
// "<time> <color>[PREFIX]<reset> <levelColor>[LEVEL]<reset> msg key=value ...".
type prefixHandler struct {
	prefix string
	color  string
	level  slog.Level
	attrs  []slog.Attr
	mu     *sync.Mutex
	w      io.Writer
}

func (h *prefixHandler) Enabled(_ context.Context, level slog.Level) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return level >= h.level
}

func (h *prefixHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	if !r.Time.IsZero() {
		sb.WriteString(r.Time.Format(time.DateTime))
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "%s[%s]%s ", h.color, h.prefix, config.LogColorReset)
	fmt.Fprintf(&sb, "%s[%s]%s %s", levelColor(r.Level), levelName(r.Level), config.LogColorReset, r.Message)

	writeAttr := func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value.Any())
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *prefixHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup is not supported; groups are flattened.
func (h *prefixHandler) WithGroup(string) slog.Handler {
	return h
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return config.LogErrorColor
	case level >= slog.LevelWarn:
		return config.LogWarningColor
	case level >= slog.LevelInfo:
		return config.LogInfoColor
	default:
		return config.LogDebugColor
	}
}
