package sloghandler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/logger"
)

// LevelTrace is the slog level that maps to trace.
const LevelTrace = slog.Level(-8)

type field struct {
	key   string
	value any
}

// Handler implements slog.Handler on top of a Logger.
type Handler struct {
	logger *logger.Logger
	attrs  []field
	group  string
}

// New creates a slog.Handler that logs through l.
func New(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// NewLogger is shorthand for slog.New(New(l)).
func NewLogger(l *logger.Logger) *slog.Logger {
	return slog.New(New(l))
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(levelFromSlog(level))
}

// Handle logs the record's message followed by its attributes as one map.
// Error attributes are logged as separate values after the map so they
// keep their stack traces.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	values := make([]any, 1, 2)
	values[0] = record.Message

	if len(h.attrs) > 0 || record.NumAttrs() > 0 {
		var errs []any
		fields := make(map[string]any, len(h.attrs)+record.NumAttrs())
		add := func(f field) {
			if err, ok := f.value.(error); ok {
				errs = append(errs, err)
				return
			}
			fields[f.key] = f.value
		}

		for _, f := range h.attrs {
			add(f)
		}
		record.Attrs(func(a slog.Attr) bool {
			appendAttr(h.group, a, add)
			return true
		})
		if len(fields) > 0 {
			values = append(values, fields)
		}
		values = append(values, errs...)
	}

	h.logger.Log(levelFromSlog(record.Level), values...)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		appendAttr(h.group, a, func(f field) { newAttrs = append(newAttrs, f) })
	}
	return &Handler{
		logger: h.logger,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newAttrs := make([]field, len(h.attrs))
	copy(newAttrs, h.attrs)
	return &Handler{
		logger: h.logger,
		attrs:  newAttrs,
		group:  joinKey(h.group, name),
	}
}

// levelFromSlog converts a slog.Level to a core.Level.
func levelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr resolves a and emits one field per leaf, prefixing keys with
// group. Empty attributes are skipped and inline groups keep the prefix.
func appendAttr(group string, a slog.Attr, emit func(field)) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, child := range a.Value.Group() {
			appendAttr(prefix, child, emit)
		}
		return
	}

	emit(field{key: joinKey(group, a.Key), value: attrValue(a.Value)})
}

func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	default:
		return v.Any()
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
