package rx

import "sync"

// Concat subscribes to the sources one at a time: each source's completion
// disposes it and starts the next. An error from any source halts the chain.
func Concat[T any](sources ...Observable[T]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		if len(sources) == 0 {
			out.OnCompleted()
			return Nop
		}
		var mu sync.Mutex
		index := 0
		current := NewSerialDisposable()

		var subscribeNext func()
		subscribeNext = func() {
			mu.Lock()
			if index == len(sources) {
				mu.Unlock()
				out.OnCompleted()
				return
			}
			source := sources[index]
			index++
			mine := index
			mu.Unlock()
			d := source.Subscribe(forwardObserver(out,
				out.OnNext,
				out.OnError,
				subscribeNext,
			))
			// A synchronously completing source already moved the chain on;
			// its finished subscription must not replace the live one.
			mu.Lock()
			live := index == mine
			mu.Unlock()
			if live {
				current.Set(d)
			}
		}
		subscribeNext()
		return current
	})
}

// StartWith prepends the given values synchronously before subscribing to
// and relaying the source.
func StartWith[T any](source Observable[T], values ...T) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		for _, v := range values {
			if disposed(out) {
				return Nop
			}
			out.OnNext(v)
		}
		return source.Subscribe(forwardObserver(out,
			out.OnNext,
			out.OnError,
			out.OnCompleted,
		))
	})
}
