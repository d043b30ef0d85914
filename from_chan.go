package rx

// FromChan bridges a channel into an Observable. Each received value becomes
// a Next event and a closed channel completes the stream. The pump goroutine
// is the only writer on the subscription, so events are never emitted
// concurrently. Disposal stops delivery without draining the channel.
func FromChan[T any](source <-chan T) Observable[T] {
	return Create(func(observer Observer[T]) Disposable {
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case v, ok := <-source:
					if !ok {
						observer.OnCompleted()
						return
					}
					observer.OnNext(v)
				case <-stop:
					return
				}
			}
		}()
		return NewDisposable(func() { close(stop) })
	})
}
