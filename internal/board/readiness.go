// Package board holds the rendering-readiness barrier: drop targets are
// only safe to enable once every journey column has rendered, and the
// number of columns is dynamic.
package board

import (
	"sync"

	"jornada/internal/observe"
)

// ReadyGate is a one-shot counter barrier. Each column reports
// completion once; when the count reaches the expected column count the
// gate flips to ready and stays there.
type ReadyGate struct {
	mu       sync.Mutex
	expected int
	rendered int
	ready    *observe.Cell[bool]
}

// NewReadyGate creates a gate expecting the given number of columns.
// A gate expecting zero columns is ready immediately.
func NewReadyGate(expected int) *ReadyGate {
	g := &ReadyGate{ready: observe.NewCell(false)}
	g.Reset(expected)
	return g
}

// ColumnRendered records one column's completion. Reports after the
// gate is ready are ignored.
func (g *ReadyGate) ColumnRendered() {
	g.mu.Lock()
	if g.ready.Get() {
		g.mu.Unlock()
		return
	}
	g.rendered++
	done := g.rendered >= g.expected
	g.mu.Unlock()

	if done {
		g.ready.Set(true)
	}
}

// Ready reports whether every expected column has rendered.
func (g *ReadyGate) Ready() bool {
	return g.ready.Get()
}

// ReadyCell exposes the gate for subscription.
func (g *ReadyGate) ReadyCell() *observe.Cell[bool] {
	return g.ready
}

// Reset re-arms the gate for a new expected count, e.g. after an import
// changes the journey set. The counter starts over.
func (g *ReadyGate) Reset(expected int) {
	g.mu.Lock()
	g.expected = expected
	g.rendered = 0
	g.mu.Unlock()
	g.ready.Set(expected <= 0)
}
