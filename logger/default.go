package logger

import (
	"sync"

	"github.com/philipp01105/scopelog/config"
	"github.com/philipp01105/scopelog/handler/consolehandler"
)

// RenderScope is the scope of the logger returned by Render.
const RenderScope = "Render"

var (
	defaultLogger *Logger
	renderLogger  *Logger
	defaultMu     sync.RWMutex
)

func init() {
	SetDefault(NewBuilder().
		WithHandler(consolehandler.NewDefaultHandler()).
		WithConfig(defaultConfig()).
		Build())
}

// defaultConfig reads LOG_LEVEL and APP_ENV from the environment and a
// .env file in the working directory. An unreadable .env file is ignored.
func defaultConfig() config.Config {
	cfg, _ := config.Load()
	return cfg
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. Scoped loggers obtained earlier keep
// the previous logger's handler and level state.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
	renderLogger = l.Scoped(RenderScope)
}

// Render returns the default logger scoped to "Render"
func Render() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return renderLogger
}

// Scoped returns the default logger scoped to scope
func Scoped(scope string) *Logger {
	return Default().Scoped(scope)
}

// SetLevel sets the minimum level of the default logger and all loggers
// scoped from it
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// CurrentLevel returns the default logger's minimum level
func CurrentLevel() Level {
	return Default().Level()
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(values ...any) {
	Default().Trace(values...)
}

// Debug logs a debug message using the default logger
func Debug(values ...any) {
	Default().Debug(values...)
}

// Info logs an info message using the default logger
func Info(values ...any) {
	Default().Info(values...)
}

// Warn logs a warning message using the default logger
func Warn(values ...any) {
	Default().Warn(values...)
}

// Error logs an error message using the default logger
func Error(values ...any) {
	Default().Error(values...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}
