package rx

import "github.com/rs/zerolog"

// Do invokes side-effect hooks for each event before forwarding it
// unchanged. Any hook may be nil. A panicking hook terminates the stream
// with an Error event like any other callback failure.
func Do[T any](source Observable[T], onNext func(T), onError func(error), onCompleted func()) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		return source.Subscribe(forwardObserver(out,
			func(v T) {
				if onNext != nil && !tryRun("do", func() { onNext(v) }, out) {
					return
				}
				out.OnNext(v)
			},
			func(err error) {
				if onError != nil {
					onError(err)
				}
				out.OnError(err)
			},
			func() {
				if onCompleted != nil {
					onCompleted()
				}
				out.OnCompleted()
			},
		))
	})
}

// Debug traces every event of a subscription through the given logger at
// debug level, tagged with id. The logger is passed in explicitly; the
// library holds no global logging state.
func Debug[T any](source Observable[T], log zerolog.Logger, id string) Observable[T] {
	return Create(func(out Observer[T]) Disposable {
		log.Debug().Str("stream", id).Msg("subscribed")
		sub := source.Subscribe(forwardObserver(out,
			func(v T) {
				log.Debug().Str("stream", id).Interface("value", v).Msg("next")
				out.OnNext(v)
			},
			func(err error) {
				log.Debug().Str("stream", id).Err(err).Msg("error")
				out.OnError(err)
			},
			func() {
				log.Debug().Str("stream", id).Msg("completed")
				out.OnCompleted()
			},
		))
		return NewDisposable(func() {
			log.Debug().Str("stream", id).Msg("disposed")
			sub.Dispose()
		})
	})
}
