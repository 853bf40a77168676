package consolehandler

import (
	"fmt"

	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/handler"
)

// DevtoolsConfig holds configuration for the devtools handler
type DevtoolsConfig struct {
	// Log receives the console.log argument list of each entry. The default
	// is the browser's console.log on js/wasm and a stdout println elsewhere.
	Log func(args ...any)
	// Color selects styled or plain output. ColorAuto styles output in a
	// browser console unless running inside a worker runtime.
	Color ColorMode
}

// DevtoolsHandler hands entries to a console.log-like function as a
// variadic argument list, the form browser devtools understand.
type DevtoolsHandler struct {
	log    func(args ...any)
	styled bool
	stats  *handler.Stats
}

// NewDevtoolsHandler creates a new devtools handler.
func NewDevtoolsHandler(cfg DevtoolsConfig) *DevtoolsHandler {
	if cfg.Log == nil {
		cfg.Log = consoleLog
	}

	styled := devtoolsStyled
	switch cfg.Color {
	case ColorAlways:
		styled = true
	case ColorNever:
		styled = false
	}

	return &DevtoolsHandler{
		log:    cfg.Log,
		styled: styled,
		stats:  handler.NewStats(),
	}
}

// Styled reports whether the handler emits %c styled labels.
func (h *DevtoolsHandler) Styled() bool {
	return h.styled
}

// Handle passes the entry's console arguments to the log function. A panic
// in the log function is reported as an error.
func (h *DevtoolsHandler) Handle(entry *core.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("console log: %v", r)
		}
		h.stats.Record(err)
	}()

	h.log(ConsoleArgs(entry, h.styled)...)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *DevtoolsHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op.
func (h *DevtoolsHandler) Close() error {
	return nil
}
