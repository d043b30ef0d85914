package rx

import (
	"sync"

	"golang.org/x/exp/slices"
)

// CombineLatest tracks the latest value of every source and emits a combined
// result each time any source emits, once every source has emitted at least
// once. A completed source's last value keeps combining with later emissions
// from the others; the output completes when all sources have completed.
func CombineLatest[T, R any](sources []Observable[T], selector func([]T) R) Observable[R] {
	return Create(func(out Observer[R]) Disposable {
		n := len(sources)
		if n == 0 {
			out.OnCompleted()
			return Nop
		}
		var mu sync.Mutex
		latest := make([]T, n)
		seen := make([]bool, n)
		ready := 0
		remaining := n
		group := NewCompositeDisposable()
		for i, source := range sources {
			i := i
			group.Add(source.Subscribe(forwardObserver(out,
				func(v T) {
					mu.Lock()
					if !seen[i] {
						seen[i] = true
						ready++
					}
					latest[i] = v
					var args []T
					if ready == n {
						args = slices.Clone(latest)
					}
					mu.Unlock()
					if args == nil {
						return
					}
					if r, ok := tryApply("combineLatest", selector, args, out); ok {
						out.OnNext(r)
					}
				},
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

// CombineLatest2 combines two differently-typed sources.
func CombineLatest2[T1, T2, R any](first Observable[T1], second Observable[T2], selector func(T1, T2) R) Observable[R] {
	sources := []Observable[any]{boxed(first), boxed(second)}
	return CombineLatest(sources, func(vs []any) R {
		return selector(vs[0].(T1), vs[1].(T2))
	})
}

// CombineLatest3 combines three differently-typed sources.
func CombineLatest3[T1, T2, T3, R any](first Observable[T1], second Observable[T2], third Observable[T3], selector func(T1, T2, T3) R) Observable[R] {
	sources := []Observable[any]{boxed(first), boxed(second), boxed(third)}
	return CombineLatest(sources, func(vs []any) R {
		return selector(vs[0].(T1), vs[1].(T2), vs[2].(T3))
	})
}

func boxed[T any](source Observable[T]) Observable[any] {
	return Map(source, func(v T) any { return v })
}
