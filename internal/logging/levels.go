package logging

import (
	"context"
	"log/slog"
)

// Plugin log levels as stored in the logLevel option.
const (
	PluginLevelFatal = iota
	PluginLevelError
	PluginLevelWarning
	PluginLevelMessage
	PluginLevelVerbose
	PluginLevelDebug
)

// LevelForOption maps the plugin's numeric logLevel onto slog. Values below
// the range clamp to error and values above it clamp to debug.
func LevelForOption(level int) slog.Level {
	switch {
	case level <= PluginLevelError:
		return slog.LevelError
	case level == PluginLevelWarning:
		return slog.LevelWarn
	case level == PluginLevelMessage:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// levelOverrideHandler enforces a minimum level in front of the wrapped
// handler, which should be configured with the most verbose level needed.
type levelOverrideHandler struct {
	next  slog.Handler
	level slog.Level
}

func (h *levelOverrideHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.next.Enabled(ctx, level)
}

func (h *levelOverrideHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.level {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *levelOverrideHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelOverrideHandler{next: h.next.WithAttrs(attrs), level: h.level}
}

func (h *levelOverrideHandler) WithGroup(name string) slog.Handler {
	return &levelOverrideHandler{next: h.next.WithGroup(name), level: h.level}
}

// WithLevelOverride returns a logger that drops records below level while
// keeping the existing handler and attributes. Overriding an overridden
// logger replaces the previous minimum.
func WithLevelOverride(logger *slog.Logger, level slog.Level) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	next := logger.Handler()
	if existing, ok := next.(*levelOverrideHandler); ok {
		next = existing.next
	}
	return slog.New(&levelOverrideHandler{next: next, level: level})
}
