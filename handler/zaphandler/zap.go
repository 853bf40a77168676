// Package zaphandler adapts a scopelog Logger to zapcore.Core so zap call
// sites share the Logger's level state and console output.
//
// zap logger names become scopes, so zap.Logger.Named("DB") renders like
// a logger scoped to "DB". Fields are collected into one object that
// follows the message.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/logger"
)

// TraceLevel is the zap level that maps to trace.
const TraceLevel = zapcore.DebugLevel - 1

// Core implements zapcore.Core on top of a Logger.
type Core struct {
	logger *logger.Logger
	fields []zapcore.Field
}

// NewCore creates a zapcore.Core that logs through l.
func NewCore(l *logger.Logger) *Core {
	return &Core{logger: l}
}

// New is shorthand for zap.New(NewCore(l), opts...).
func New(l *logger.Logger, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(l), opts...)
}

// Enabled reports whether entries at level would be logged.
func (c *Core) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(levelFromZap(level))
}

// With returns a Core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields)+len(fields))
	copy(newFields, c.fields)
	copy(newFields[len(c.fields):], fields)
	return &Core{
		logger: c.logger,
		fields: newFields,
	}
}

// Check adds c to the checked entry when its level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write logs the entry's message, fields and stack trace.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	values := make([]any, 1, 3)
	values[0] = ent.Message

	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		values = append(values, enc.Fields)
	}
	if ent.Stack != "" {
		values = append(values, ent.Stack)
	}

	l := c.logger
	if ent.LoggerName != "" {
		l = l.Scoped(ent.LoggerName)
	}
	l.Log(levelFromZap(ent.Level), values...)
	return nil
}

// Sync is a no-op; console output is unbuffered.
func (c *Core) Sync() error {
	return nil
}

// levelFromZap converts a zapcore.Level to a core.Level. DPanic, Panic and
// Fatal log as error; zap itself handles the panic or exit.
func levelFromZap(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	case level >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
