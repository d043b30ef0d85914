package rx

// Materialize reifies every event of the source — terminal ones included —
// into a Next value carrying that event. The output never errors; it
// completes right after forwarding a carried terminal event, which lets a
// pipeline inspect or defer failures without terminating itself.
func Materialize[T any](source Observable[T]) Observable[Event[T]] {
	return Create(func(out Observer[Event[T]]) Disposable {
		return source.Subscribe(forwardObserver[T](out,
			func(v T) { out.OnNext(Next(v)) },
			func(err error) {
				out.OnNext(Error[T](err))
				out.OnCompleted()
			},
			func() {
				out.OnNext(Completed[T]())
				out.OnCompleted()
			},
		))
	})
}

// Dematerialize unwraps a stream of reified events, re-emitting each as a
// real event. A carried terminal event terminates the output.
func Dematerialize[T any](source Observable[Event[T]]) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		return source.Subscribe(forwardObserver[Event[T]](out,
			func(e Event[T]) { emit(out, e) },
			out.OnError,
			out.OnCompleted,
		))
	})
}
