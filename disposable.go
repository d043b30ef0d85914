package rx

import (
	"sync"

	"go.uber.org/atomic"
)

// Disposable is a cancellation capability for a subscription or any other
// owned resource. Dispose is idempotent: the second and later calls are
// no-ops, never errors.
type Disposable interface {
	Dispose()
	IsDisposed() bool
}

// disposedChecker is the read-only half of Disposable, used where only the
// state matters.
type disposedChecker interface {
	IsDisposed() bool
}

// Nop is the Disposable that owns nothing.
var Nop Disposable = nopDisposable{}

type nopDisposable struct{}

func (nopDisposable) Dispose()         {}
func (nopDisposable) IsDisposed() bool { return true }

// NewDisposable wraps a teardown function. The function runs exactly once,
// on the first Dispose call.
func NewDisposable(onDispose func()) Disposable {
	return &fnDisposable{onDispose: onDispose}
}

type fnDisposable struct {
	disposed  atomic.Bool
	onDispose func()
}

func (d *fnDisposable) Dispose() {
	if d.disposed.CompareAndSwap(false, true) && d.onDispose != nil {
		d.onDispose()
	}
}

func (d *fnDisposable) IsDisposed() bool { return d.disposed.Load() }

// SerialDisposable holds at most one inner Disposable. Setting a new one
// disposes the previous, and setting anything on an already-disposed
// SerialDisposable disposes the newcomer immediately. Operators that move
// between upstream subscriptions (concat, switchLatest) rely on it.
type SerialDisposable struct {
	mu       sync.Mutex
	disposed bool
	current  Disposable
}

func NewSerialDisposable() *SerialDisposable {
	return &SerialDisposable{}
}

// Set swaps in a new inner Disposable, disposing whatever it replaces.
func (s *SerialDisposable) Set(d Disposable) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	prev := s.current
	s.current = d
	s.mu.Unlock()
	if prev != nil {
		prev.Dispose()
	}
}

func (s *SerialDisposable) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	cur := s.current
	s.current = nil
	s.mu.Unlock()
	if cur != nil {
		cur.Dispose()
	}
}

func (s *SerialDisposable) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// CompositeDisposable owns a keyed set of Disposables and disposes all of
// them together. Entries can be removed individually, which operators with
// many short-lived inner subscriptions (flatMap, bounded merge) use to keep
// the set from growing without bound.
type CompositeDisposable struct {
	mu       sync.Mutex
	disposed bool
	nextKey  uint64
	items    map[uint64]Disposable
}

func NewCompositeDisposable(children ...Disposable) *CompositeDisposable {
	c := &CompositeDisposable{items: make(map[uint64]Disposable)}
	for _, d := range children {
		c.Add(d)
	}
	return c
}

// Add inserts a Disposable and returns its removal key. Adding to a disposed
// composite, or adding an already-disposed entry, disposes it right away and
// returns 0.
func (c *CompositeDisposable) Add(d Disposable) uint64 {
	if d == nil {
		return 0
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		d.Dispose()
		return 0
	}
	if d.IsDisposed() {
		c.mu.Unlock()
		return 0
	}
	c.nextKey++
	key := c.nextKey
	c.items[key] = d
	c.mu.Unlock()
	return key
}

// Remove disposes and forgets a single entry. Unknown keys are no-ops.
func (c *CompositeDisposable) Remove(key uint64) {
	c.mu.Lock()
	d, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}
	c.mu.Unlock()
	if ok {
		d.Dispose()
	}
}

func (c *CompositeDisposable) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *CompositeDisposable) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	items := c.items
	c.items = nil
	c.mu.Unlock()
	for _, d := range items {
		d.Dispose()
	}
}

func (c *CompositeDisposable) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
