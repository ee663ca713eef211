package oracle

import (
	"sync/atomic"

	"github.com/katalvlaran/costar/internal/metrics"
)

// Holder publishes the current Oracle to concurrent readers and lets a
// reloader replace it without locking queries.
type Holder struct {
	current atomic.Pointer[Oracle]
}

// NewHolder returns a Holder serving initial.
func NewHolder(initial *Oracle) *Holder {
	h := &Holder{}
	h.Swap(initial)

	return h
}

// Load returns the Oracle currently in service.
func (h *Holder) Load() *Oracle { return h.current.Load() }

// Swap installs next and returns the Oracle it replaced.
// A nil next is ignored so readers never observe a missing Oracle.
func (h *Holder) Swap(next *Oracle) *Oracle {
	if next == nil {
		return h.current.Load()
	}
	prev := h.current.Swap(next)
	if next.metrics {
		g := next.index.Graph()
		metrics.GraphNodes.Set(float64(g.NodeCount()))
		metrics.GraphEdges.Set(float64(g.EdgeCount()))
	}

	return prev
}
