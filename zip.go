package rx

import (
	"sync"

	"github.com/ef-ds/deque"
)

// Zip pairs the i-th value of every source positionally, emitting a combined
// result once all sources have produced a value at that index. Emission
// stops when any source has run dry, but the output completes only once
// every source has completed.
func Zip[T, R any](sources []Observable[T], selector func([]T) R) Observable[R] {
	return Create(func(out Observer[R]) Disposable {
		n := len(sources)
		if n == 0 {
			out.OnCompleted()
			return Nop
		}
		var mu sync.Mutex
		queues := make([]*deque.Deque, n)
		for i := range queues {
			queues[i] = deque.New()
		}
		remaining := n
		group := NewCompositeDisposable()
		for i, source := range sources {
			i := i
			group.Add(source.Subscribe(forwardObserver(out,
				func(v T) {
					mu.Lock()
					queues[i].PushBack(v)
					full := true
					for _, q := range queues {
						if q.Len() == 0 {
							full = false
							break
						}
					}
					var args []T
					if full {
						args = make([]T, n)
						for j, q := range queues {
							x, _ := q.PopFront()
							args[j] = x.(T)
						}
					}
					mu.Unlock()
					if args == nil {
						return
					}
					if r, ok := tryApply("zip", selector, args, out); ok {
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

// Zip2 pairs two differently-typed sources in lockstep.
func Zip2[T1, T2, R any](first Observable[T1], second Observable[T2], selector func(T1, T2) R) Observable[R] {
	sources := []Observable[any]{boxed(first), boxed(second)}
	return Zip(sources, func(vs []any) R {
		return selector(vs[0].(T1), vs[1].(T2))
	})
}

// Zip3 pairs three differently-typed sources in lockstep.
func Zip3[T1, T2, T3, R any](first Observable[T1], second Observable[T2], third Observable[T3], selector func(T1, T2, T3) R) Observable[R] {
	sources := []Observable[any]{boxed(first), boxed(second), boxed(third)}
	return Zip(sources, func(vs []any) R {
		return selector(vs[0].(T1), vs[1].(T2), vs[2].(T3))
	})
}
