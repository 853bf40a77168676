// Package handler provides the Handler interface that receives filtered
// log entries, plus small building blocks shared by the concrete handlers.
//
// A Logger checks the level first and only then builds an Entry and calls
// Handle, so handlers never see suppressed messages. Handlers run
// synchronously on the caller's goroutine; the entry must not be retained
// after Handle returns.
//
// Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes plain or color-styled lines to
//     any io.Writer (default: stdout).
//   - consolehandler.DevtoolsHandler emits console.log-style argument lists
//     with %c CSS directives for browser consoles.
//   - MultiHandler fans out a single entry to multiple child handlers.
//
// The sloghandler and zaphandler packages work the other way round: they
// let log/slog and zap call sites feed entries into a Logger.
//
// Handlers track processed and failed writes via the Stats type, which can
// be queried at runtime through StatsProvider.
package handler
