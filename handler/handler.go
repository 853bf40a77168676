package handler

import (
	"github.com/philipp01105/scopelog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle renders a log entry. The entry is only valid for the
	// duration of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes.
type StatsProvider interface {
	Stats() Snapshot
}
