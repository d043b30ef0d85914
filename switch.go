package rx

import "sync"

// SwitchLatest flattens a source of inner Observables, keeping at most one
// inner subscription: each inner that arrives disposes the previous one. The
// output completes once the outer source has completed and the current inner
// has completed.
func SwitchLatest[T any](source Observable[Observable[T]]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		var mu sync.Mutex
		var epoch uint64
		outerDone := false
		innerActive := false
		inner := NewSerialDisposable()

		outerSub := source.Subscribe(forwardObserver[Observable[T]](out,
			func(next Observable[T]) {
				mu.Lock()
				epoch++
				id := epoch
				innerActive = true
				mu.Unlock()
				// The epoch guard drops straggler events from a replaced
				// inner that were already in flight when it was disposed.
				inner.Set(next.Subscribe(forwardObserver(out,
					func(v T) {
						mu.Lock()
						live := epoch == id
						mu.Unlock()
						if live {
							out.OnNext(v)
						}
					},
					func(err error) {
						mu.Lock()
						live := epoch == id
						mu.Unlock()
						if live {
							out.OnError(err)
						}
					},
					func() {
						mu.Lock()
						live := epoch == id
						if live {
							innerActive = false
						}
						finished := live && outerDone
						mu.Unlock()
						if finished {
							out.OnCompleted()
						}
					},
				)))
			},
			out.OnError,
			func() {
				mu.Lock()
				outerDone = true
				finished := !innerActive
				mu.Unlock()
				if finished {
					out.OnCompleted()
				}
			},
		))
		return NewCompositeDisposable(outerSub, inner)
	})
}
