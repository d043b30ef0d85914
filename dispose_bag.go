package rx

import "sync"

// DisposeBag collects Disposables and disposes all of them, newest first,
// when the bag itself is torn down. The zero value is ready to use.
//
// Anything added after teardown is disposed immediately, so a bag bound to
// an owner's lifetime stays safe to use during shutdown.
type DisposeBag struct {
	mu       sync.Mutex
	disposed bool
	items    []Disposable
}

func NewDisposeBag() *DisposeBag {
	return &DisposeBag{}
}

func (b *DisposeBag) Add(d Disposable) {
	if d == nil {
		return
	}
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		d.Dispose()
		return
	}
	b.items = append(b.items, d)
	b.mu.Unlock()
}

func (b *DisposeBag) Dispose() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	b.disposed = true
	items := b.items
	b.items = nil
	b.mu.Unlock()
	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}

func (b *DisposeBag) IsDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disposed
}
