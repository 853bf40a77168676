package logger

import (
	"fmt"

	"github.com/philipp01105/scopelog/config"
	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/handler"
)

// Logger emits leveled messages through a handler. Loggers derived with
// Scoped share the level state of their parent.
type Logger struct {
	handler handler.Handler
	state   *core.LevelState
	scope   string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler    handler.Handler
	state      *core.LevelState
	level      core.Level
	production bool
	scope      string
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the starting minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithProduction enables the production guard, which refuses runtime
// switches to trace or debug.
func (b *Builder) WithProduction(production bool) *Builder {
	b.production = production
	return b
}

// WithConfig sets level and production mode from a resolved configuration
func (b *Builder) WithConfig(cfg config.Config) *Builder {
	b.level = cfg.InitialLevel()
	b.production = cfg.Production()
	return b
}

// WithState shares an existing level state instead of creating a new one.
// It takes precedence over WithLevel, WithProduction and WithConfig.
func (b *Builder) WithState(s *core.LevelState) *Builder {
	b.state = s
	return b
}

// WithScope sets the scope label of the built logger
func (b *Builder) WithScope(scope string) *Builder {
	b.scope = scope
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	state := b.state
	if state == nil {
		state = core.NewLevelState(b.level, b.production)
	}
	return &Logger{
		handler: b.handler,
		state:   state,
		scope:   b.scope,
	}
}

// Scoped returns a logger that tags every message with scope. It shares
// the handler and level state with l; an empty scope means unscoped.
func (l *Logger) Scoped(scope string) *Logger {
	return &Logger{
		handler: l.handler,
		state:   l.state,
		scope:   scope,
	}
}

// Scope returns the logger's scope label
func (l *Logger) Scope() string {
	return l.scope
}

// State returns the level state shared by l and its scoped loggers
func (l *Logger) State() *core.LevelState {
	return l.state
}

// Level returns the current minimum level
func (l *Logger) Level() core.Level {
	return l.state.Level()
}

// Enabled reports whether a message at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return l.state.Enabled(level)
}

// SetLevel changes the minimum level for l and every logger sharing its
// state. In production mode trace and debug are silently ignored, as are
// invalid levels.
func (l *Logger) SetLevel(level core.Level) {
	l.state.SetLevel(level)
}

// Log logs the values at the specified level
func (l *Logger) Log(level core.Level, values ...any) {
	// Level check optimization - exit early BEFORE any allocations
	if !l.state.Enabled(level) {
		return
	}
	l.log(level, values)
}

// log hands the values to the handler. Handler errors and panics stay
// here; logging never fails the caller.
func (l *Logger) log(level core.Level, values []any) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	defer func() {
		recover()
		core.PutEntry(entry)
	}()

	entry.Level = level
	entry.Scope = l.scope
	entry.Messages = append(entry.Messages, values...)

	_ = l.handler.Handle(entry)
}

// Trace logs a trace message
func (l *Logger) Trace(values ...any) {
	if !l.state.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, values)
}

// Debug logs a debug message
func (l *Logger) Debug(values ...any) {
	if !l.state.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, values)
}

// Info logs an info message
func (l *Logger) Info(values ...any) {
	if !l.state.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, values)
}

// Warn logs a warning message
func (l *Logger) Warn(values ...any) {
	if !l.state.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, values)
}

// Error logs an error message
func (l *Logger) Error(values ...any) {
	if !l.state.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, values)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.state.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, []any{fmt.Sprintf(format, args...)})
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.state.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, []any{fmt.Sprintf(format, args...)})
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.state.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, []any{fmt.Sprintf(format, args...)})
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.state.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, []any{fmt.Sprintf(format, args...)})
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.state.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, []any{fmt.Sprintf(format, args...)})
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
