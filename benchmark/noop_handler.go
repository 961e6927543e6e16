package benchmark

import (
	"github.com/philipp01105/gklog/core"
	"github.com/philipp01105/gklog/handler"
)

// noopHandler measures the logger front end (gate, rendering, entry pool)
// without formatting or I/O.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
