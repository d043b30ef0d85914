package rx

// Buffered decouples the source from its downstream with a channel of the
// given capacity and a single pump goroutine, so a slow consumer stops
// blocking the producer until the buffer fills. The pump is the only writer
// on the downstream subscription.
func Buffered[T any](source Observable[T], capacity int) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		events := make(chan Event[T], capacity)
		stop := make(chan struct{})

		go func() {
			for {
				select {
				case e := <-events:
					emit(out, e)
					if e.IsTerminal() {
						return
					}
				case <-stop:
					return
				}
			}
		}()

		push := func(e Event[T]) {
			select {
			case events <- e:
			case <-stop:
			}
		}
		sub := source.Subscribe(NewObserver(
			func(v T) { push(Next(v)) },
			func(err error) { push(Error[T](err)) },
			func() { push(Completed[T]()) },
		))
		return NewCompositeDisposable(sub, NewDisposable(func() { close(stop) }))
	})
}
