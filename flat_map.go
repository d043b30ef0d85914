package rx

import "sync"

// FlatMap subscribes to the inner Observable produced for every source value
// and forwards all their emissions; inner sequences stay active concurrently
// and their values interleave in arrival order. The output completes only
// once the source and every spawned inner have completed. Any error — outer
// or inner — propagates immediately and disposes everything else.
func FlatMap[T, U any](source Observable[T], selector func(T) Observable[U]) Observable[U] {
	return Create(func(out Observer[U]) Disposable {
		var mu sync.Mutex
		active := 1 // the outer source counts as one
		group := NewCompositeDisposable()

		completeOne := func() {
			mu.Lock()
			active--
			finished := active == 0
			mu.Unlock()
			if finished {
				out.OnCompleted()
			}
		}

		outerSub := source.Subscribe(forwardObserver(out,
			func(v T) {
				inner, ok := tryApply("flatMap", selector, v, out)
				if !ok {
					return
				}
				mu.Lock()
				active++
				mu.Unlock()
				var key uint64
				d := inner.Subscribe(forwardObserver(out,
					out.OnNext,
					out.OnError,
					func() {
						mu.Lock()
						k := key
						mu.Unlock()
						group.Remove(k)
						completeOne()
					},
				))
				mu.Lock()
				key = group.Add(d)
				mu.Unlock()
			},
			out.OnError,
			completeOne,
		))
		group.Add(outerSub)
		return group
	})
}

// FlatMapLatest keeps only the most recently spawned inner sequence alive: a
// new source value disposes the previous inner subscription before the next
// one starts.
func FlatMapLatest[T, U any](source Observable[T], selector func(T) Observable[U]) Observable[U] {
	return SwitchLatest(Map(source, selector))
}
