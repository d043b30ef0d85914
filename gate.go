package rx

import "go.uber.org/atomic"

// SkipUntil drops source values until trigger emits once; from then on
// everything is forwarded. A trigger that completes without emitting leaves
// the gate closed forever. A trigger error propagates.
func SkipUntil[T, U any](source Observable[T], trigger Observable[U]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		open := atomic.NewBool(false)
		triggerSub := NewSerialDisposable()
		triggerSub.Set(trigger.Subscribe(forwardObserver[U](out,
			func(U) {
				open.Store(true)
				triggerSub.Dispose()
			},
			out.OnError,
			nil,
		)))
		sourceSub := source.Subscribe(forwardObserver(out,
			func(v T) {
				if open.Load() {
					out.OnNext(v)
				}
			},
			out.OnError,
			out.OnCompleted,
		))
		return NewCompositeDisposable(sourceSub, triggerSub)
	})
}

// TakeUntil forwards source values until trigger emits once, then completes
// and unsubscribes from the source. The triggering element itself is never
// part of the output. A trigger that completes without emitting is ignored.
func TakeUntil[T, U any](source Observable[T], trigger Observable[U]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		triggerSub := trigger.Subscribe(forwardObserver[U](out,
			func(U) { out.OnCompleted() },
			out.OnError,
			nil,
		))
		sourceSub := source.Subscribe(forwardObserver(out,
			out.OnNext,
			out.OnError,
			out.OnCompleted,
		))
		return NewCompositeDisposable(triggerSub, sourceSub)
	})
}
