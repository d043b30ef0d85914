package rx

import "sync"

// Amb subscribes to every candidate and relays exclusively from whichever
// emits first — any event counts, including an immediate error or
// completion. The losers are disposed as soon as a winner is known.
func Amb[T any](sources ...Observable[T]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		if len(sources) == 0 {
			out.OnCompleted()
			return Nop
		}
		var mu sync.Mutex
		winner := -1
		subs := make([]Disposable, len(sources))

		claim := func(i int) bool {
			mu.Lock()
			if winner == -1 {
				winner = i
				var losers []Disposable
				for j, d := range subs {
					if j != i && d != nil {
						losers = append(losers, d)
					}
				}
				mu.Unlock()
				for _, d := range losers {
					d.Dispose()
				}
				return true
			}
			won := winner == i
			mu.Unlock()
			return won
		}

		group := NewCompositeDisposable()
		for i, source := range sources {
			i := i
			d := source.Subscribe(forwardObserver(out,
				func(v T) {
					if claim(i) {
						out.OnNext(v)
					}
				},
				func(err error) {
					if claim(i) {
						out.OnError(err)
					}
				},
				func() {
					if claim(i) {
						out.OnCompleted()
					}
				},
			))
			mu.Lock()
			lost := winner != -1 && winner != i
			if !lost {
				subs[i] = d
			}
			mu.Unlock()
			if lost {
				d.Dispose()
				continue
			}
			group.Add(d)
		}
		return group
	})
}
