// Package sloghandler adapts a scopelog Logger to log/slog.Handler so code
// written against the standard library's structured logging shares the
// Logger's level state and console output.
//
// Records become a message followed by one object holding the attributes,
// which prints as indented JSON on styled output. Groups are flattened into
// dotted keys. slog levels below Debug map to trace.
package sloghandler
