// Package logger is the public API of scopelog. Most users only need to
// import this package.
//
// Five leveled methods (Trace, Debug, Info, Warn, Error) accept any
// values. Errors print their stack trace when one was captured, objects
// print as indented JSON, everything else through fmt:
//
//	logger.Info("Started", map[string]int{"port": 3000})
//
// The package initializes a default Logger in init(). Its starting level
// comes from LOG_LEVEL, or info when APP_ENV=production and debug
// otherwise. Both are read from the process environment first and then
// from a .env file in the working directory. Output goes to stdout, with colored labels on a terminal and
// "[LEVEL] ..." lines elsewhere; js/wasm builds log to the browser console.
//
// Scoped loggers tag their messages with a fixed label and share the
// minimum level with the logger they came from:
//
//	db := logger.Scoped("DB")
//	db.Warn("slow query")
//	logger.Render().Debug("frame", n)
//
// SetLevel changes the level for every logger sharing the state. With
// production mode on, requests for trace or debug are ignored.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.TraceLevel).
//	    Build()
//
// Level checks happen before any allocation, so filtered-out
// messages cost only an atomic load and a comparison. Emit methods
// never return errors and never panic.
package logger
