package rx

// Just emits a single value and completes, synchronously at subscribe time.
func Just[T any](value T) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		observer.OnNext(value)
		observer.OnCompleted()
		return Nop
	})
}

// Of emits each value in order and completes.
func Of[T any](values ...T) Observable[T] {
	return From(values)
}

// From emits each element of the slice in order and completes. The slice is
// not copied; callers that keep mutating it should pass a copy.
func From[T any](values []T) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		for _, v := range values {
			if disposed(observer) {
				return Nop
			}
			observer.OnNext(v)
		}
		observer.OnCompleted()
		return Nop
	})
}

// Empty completes immediately without emitting.
func Empty[T any]() Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		observer.OnCompleted()
		return Nop
	})
}

// Never emits nothing, ever.
func Never[T any]() Observable[T] {
	return Create(func(Observer[T]) Disposable {
		return Nop
	})
}

// Throw fails immediately with err.
func Throw[T any](err error) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		observer.OnError(err)
		return Nop
	})
}

// Range emits count consecutive integers starting at start, then completes.
func Range(start, count int) Observable[int] {
	return Create(func(observer Observer[int]) Disposable {
		for i := 0; i < count; i++ {
			if disposed(observer) {
				return Nop
			}
			observer.OnNext(start + i)
		}
		observer.OnCompleted()
		return Nop
	})
}

// Deferred invokes factory afresh for every subscription, so stateful or
// side-effecting sources never share state across subscribers.
func Deferred[T any](factory func() Observable[T]) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		return factory().Subscribe(observer)
	})
}
