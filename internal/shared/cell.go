// Package shared holds the state exchanged between the input task and the
// render task. Every value lives in its own lock-guarded cell; cells are
// never locked together, so no lock ordering exists between them.
package shared

import (
	"errors"
	"sync"
)

// ErrPoisoned is returned by a cell whose previous holder panicked while
// holding its lock. The cell stays poisoned for the rest of the process.
var ErrPoisoned = errors.New("shared cell poisoned")

// Cell is a value guarded by its own mutex.
type Cell[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned bool
}

// NewCell returns a cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// With runs fn with exclusive access to the value. fn must not block or
// touch another cell. If fn panics the cell is poisoned and the panic
// continues up the caller's stack.
func (c *Cell[T]) With(fn func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return ErrPoisoned
	}
	defer func() {
		if r := recover(); r != nil {
			c.poisoned = true
			panic(r)
		}
	}()
	fn(&c.value)
	return nil
}

// Load returns a copy of the value.
func (c *Cell[T]) Load() (T, error) {
	var out T
	err := c.With(func(v *T) { out = *v })
	return out, err
}
