package rx

import "sync"

// WithLatestFrom emits, for every value of the primary source, a combination
// with the latest value of other. Primary values arriving before other has
// produced anything are dropped. The other completing on its own does not
// end the stream.
func WithLatestFrom[T, U, R any](source Observable[T], other Observable[U], selector func(T, U) R) Observable[R] {
	return Create(func(out Observer[R]) Disposable {
		var mu sync.Mutex
		var latest U
		seen := false
		otherSub := other.Subscribe(forwardObserver[U](out,
			func(v U) {
				mu.Lock()
				latest = v
				seen = true
				mu.Unlock()
			},
			out.OnError,
			nil,
		))
		sourceSub := source.Subscribe(forwardObserver(out,
			func(v T) {
				mu.Lock()
				ok := seen
				u := latest
				mu.Unlock()
				if !ok {
					return
				}
				if r, k := tryApply("withLatestFrom", func(v T) R { return selector(v, u) }, v, out); k {
					out.OnNext(r)
				}
			},
			out.OnError,
			out.OnCompleted,
		))
		return NewCompositeDisposable(otherSub, sourceSub)
	})
}

// Sample emits the latest source value on each trigger emission, but only if
// that value arrived since the previous trigger; a trigger firing with
// nothing new emits nothing. The output completes with the source.
func Sample[T, U any](source Observable[T], trigger Observable[U]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		var mu sync.Mutex
		var latest T
		fresh := false
		sourceSub := source.Subscribe(forwardObserver(out,
			func(v T) {
				mu.Lock()
				latest = v
				fresh = true
				mu.Unlock()
			},
			out.OnError,
			out.OnCompleted,
		))
		triggerSub := trigger.Subscribe(forwardObserver[U](out,
			func(U) {
				mu.Lock()
				send := fresh
				v := latest
				fresh = false
				mu.Unlock()
				if send {
					out.OnNext(v)
				}
			},
			out.OnError,
			nil,
		))
		return NewCompositeDisposable(sourceSub, triggerSub)
	})
}
