package benchmark

import (
	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/handler"
)

// noopHandler measures the logger path without any rendering.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Messages)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
