package rx

// Map transforms each value through selector. Error and Completed pass
// through unchanged, and selector is never invoked after termination.
func Map[T, U any](source Observable[T], selector func(T) U) Observable[U] {
	return Create(func(out Observer[U]) Disposable {
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if u, ok := tryApply("map", selector, v, out); ok {
					out.OnNext(u)
				}
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// MapErr is Map for selectors that can fail; a non-nil error terminates the
// output stream with an Error event.
func MapErr[T, U any](source Observable[T], selector func(T) (U, error)) Observable[U] {
	return Create(func(out Observer[U]) Disposable {
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				var selErr error
				u, ok := tryApply("mapErr", func(v T) U {
					u, err := selector(v)
					selErr = err
					return u
				}, v, out)
				if !ok {
					return
				}
				if selErr != nil {
					out.OnError(selErr)
					return
				}
				out.OnNext(u)
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// CompactMap transforms each value and drops the ones selector declines.
func CompactMap[T, U any](source Observable[T], selector func(T) (U, bool)) Observable[U] {
	return Create(func(out Observer[U]) Disposable {
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				var keep bool
				u, ok := tryApply("compactMap", func(v T) U {
					u, k := selector(v)
					keep = k
					return u
				}, v, out)
				if ok && keep {
					out.OnNext(u)
				}
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// Scan emits the running accumulation after every source value, starting
// from seed.
func Scan[T, A any](source Observable[T], seed A, accumulator func(A, T) A) Observable[A] {
	return Create(func(out Observer[A]) Disposable {
		acc := seed
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				next, ok := tryApply("scan", func(v T) A { return accumulator(acc, v) }, v, out)
				if !ok {
					return
				}
				acc = next
				out.OnNext(acc)
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// Reduce folds the whole sequence and emits the single result on completion.
// A source that never completes produces nothing; a source error discards
// the partial accumulation.
func Reduce[T, A any](source Observable[T], seed A, accumulator func(A, T) A) Observable[A] {
	return Create(func(out Observer[A]) Disposable {
		acc := seed
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if next, ok := tryApply("reduce", func(v T) A { return accumulator(acc, v) }, v, out); ok {
					acc = next
				}
			},
			out.OnError,
			func() {
				out.OnNext(acc)
				out.OnCompleted()
			},
		))
	})
}

// ToArray buffers every value in arrival order and emits the slice once on
// completion. A source error discards the buffer and propagates instead.
func ToArray[T any](source Observable[T]) Observable[[]T] {
	return Create(func(out Observer[[]T]) Disposable {
		var values []T
		return source.Subscribe(forwardObserver(out,
			func(v T) { values = append(values, v) },
			func(err error) {
				values = nil
				out.OnError(err)
			},
			func() {
				out.OnNext(values)
				out.OnCompleted()
			},
		))
	})
}
