// Package observe provides a small observable value cell: one current
// snapshot plus subscribers notified on every replacement. Stores publish
// their collections through cells so the read side never sees a half-applied
// mutation, only whole snapshots.
package observe

import "sync"

// Cell holds a value and notifies subscribers when it is replaced.
// Values should be treated as immutable snapshots by readers.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[int]func(T)
	next  int
}

// NewCell creates a cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current snapshot.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the snapshot and notifies every subscriber with the new
// value. Subscribers run on the caller's goroutine, after the value is
// visible to Get.
func (c *Cell[T]) Set(value T) {
	c.mu.Lock()
	c.value = value
	subs := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Subscribe registers fn for future updates and returns a cancel func.
// fn is not called with the current value.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
