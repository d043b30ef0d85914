package rx

import (
	"sync"

	"github.com/ef-ds/deque"
)

// Merge subscribes to every source at once and relays values in arrival
// order; there is no ordering guarantee between sources. The output
// completes once every source has completed; any source error propagates
// immediately and disposes the rest.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		if len(sources) == 0 {
			out.OnCompleted()
			return Nop
		}
		var mu sync.Mutex
		remaining := len(sources)
		group := NewCompositeDisposable()
		for _, source := range sources {
			group.Add(source.Subscribe(forwardObserver(out,
				out.OnNext,
				out.OnError,
				func() {
					mu.Lock()
					remaining--
					finished := remaining == 0
					mu.Unlock()
					if finished {
						out.OnCompleted()
					}
				},
			)))
		}
		return group
	})
}

// MergeMax is Merge with at most maxConcurrent sources active; the rest wait
// in a FIFO and are activated in order as slots free up. maxConcurrent < 1
// behaves like Merge.
func MergeMax[T any](maxConcurrent int, sources ...Observable[T]) Observable[T] {
	if maxConcurrent < 1 || maxConcurrent >= len(sources) {
		return Merge(sources...)
	}
	return Create(func(out Observer[T]) Disposable {
		var mu sync.Mutex
		pending := deque.New()
		remaining := len(sources)
		group := NewCompositeDisposable()

		var activate func(Observable[T])
		onCompleted := func() {
			mu.Lock()
			remaining--
			finished := remaining == 0
			var next Observable[T]
			hasNext := false
			if !finished && pending.Len() > 0 {
				v, _ := pending.PopFront()
				next = v.(Observable[T])
				hasNext = true
			}
			mu.Unlock()
			if finished {
				out.OnCompleted()
				return
			}
			if hasNext {
				activate(next)
			}
		}
		activate = func(source Observable[T]) {
			d := source.Subscribe(forwardObserver(out,
				out.OnNext,
				out.OnError,
				onCompleted,
			))
			group.Add(d)
		}

		mu.Lock()
		for _, source := range sources[maxConcurrent:] {
			pending.PushBack(source)
		}
		mu.Unlock()
		for _, source := range sources[:maxConcurrent] {
			activate(source)
		}
		return group
	})
}
