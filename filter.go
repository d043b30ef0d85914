package rx

// Filter forwards only the values satisfying predicate.
func Filter[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if keep, ok := tryApply("filter", predicate, v, out); ok && keep {
					out.OnNext(v)
				}
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// Skip drops the first count values.
func Skip[T any](source Observable[T], count int) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		remaining := count
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if remaining > 0 {
					remaining--
					return
				}
				out.OnNext(v)
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// Take forwards the first count values, then completes and unsubscribes from
// the source early.
func Take[T any](source Observable[T], count int) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		if count <= 0 {
			out.OnCompleted()
			return Nop
		}
		remaining := count
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if remaining == 0 {
					return
				}
				remaining--
				out.OnNext(v)
				if remaining == 0 {
					out.OnCompleted()
				}
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// SkipWhile drops values while predicate holds; after the first failure
// everything is forwarded, including later values the predicate would match.
func SkipWhile[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		skipping := true
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if skipping {
					skip, ok := tryApply("skipWhile", predicate, v, out)
					if !ok {
						return
					}
					if skip {
						return
					}
					skipping = false
				}
				out.OnNext(v)
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// TakeWhile forwards values while predicate holds, then completes. The value
// that first fails the predicate is excluded.
func TakeWhile[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return takeWhile(source, predicate, false)
}

// TakeWhileInclusive is TakeWhile, but the value that ends the stream is
// forwarded before completion.
func TakeWhileInclusive[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return takeWhile(source, predicate, true)
}

func takeWhile[T any](source Observable[T], predicate func(T) bool, inclusive bool) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				keep, ok := tryApply("takeWhile", predicate, v, out)
				if !ok {
					return
				}
				if keep {
					out.OnNext(v)
					return
				}
				if inclusive {
					out.OnNext(v)
				}
				out.OnCompleted()
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// ElementAt forwards only the value at the 0-based index, then completes and
// unsubscribes from the source.
func ElementAt[T any](source Observable[T], index int) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		i := 0
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if i == index {
					out.OnNext(v)
					out.OnCompleted()
				}
				i++
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}

// DistinctUntilChanged suppresses values equal to the immediately preceding
// forwarded value. The comparison window is one element, not the history.
func DistinctUntilChanged[T comparable](source Observable[T]) Observable[T] {
	return DistinctUntilChangedFunc(source, func(a, b T) bool { return a == b })
}

// DistinctUntilChangedFunc is DistinctUntilChanged with a custom comparer.
func DistinctUntilChangedFunc[T any](source Observable[T], equal func(T, T) bool) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		var last T
		seeded := false
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if seeded {
					same, ok := tryApply("distinctUntilChanged", func(v T) bool { return equal(last, v) }, v, out)
					if !ok {
						return
					}
					if same {
						return
					}
				}
				seeded = true
				last = v
				out.OnNext(v)
			},
			out.OnError,
			out.OnCompleted,
		))
	})
}
