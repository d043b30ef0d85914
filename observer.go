package rx

// Observer is the sink side of a subscription. Implementations receive any
// number of OnNext calls followed by at most one OnError or OnCompleted.
type Observer[T any] interface {
	OnNext(T)
	OnError(error)
	OnCompleted()
}

// NewObserver builds an Observer from handler functions. Any handler may be
// nil; a nil handler drops its events, so an observer without an error
// handler silently ends on failure.
func NewObserver[T any](next func(T), err func(error), completed func()) Observer[T] {
	return &funcObserver[T]{next: next, err: err, completed: completed}
}

type funcObserver[T any] struct {
	next      func(T)
	err       func(error)
	completed func()
	state     disposedChecker
}

func (o *funcObserver[T]) OnNext(v T) {
	if o.next != nil {
		o.next(v)
	}
}

func (o *funcObserver[T]) OnError(err error) {
	if o.err != nil {
		o.err(err)
	}
}

func (o *funcObserver[T]) OnCompleted() {
	if o.completed != nil {
		o.completed()
	}
}

func (o *funcObserver[T]) IsDisposed() bool {
	return o.state != nil && o.state.IsDisposed()
}

// forwardObserver is NewObserver for operator internals: it remembers the
// downstream sink so that synchronous producers can observe disposal through
// the operator boundary (see disposed).
func forwardObserver[T any](downstream any, next func(T), err func(error), completed func()) Observer[T] {
	o := &funcObserver[T]{next: next, err: err, completed: completed}
	if s, ok := downstream.(disposedChecker); ok {
		o.state = s
	}
	return o
}

// emit replays a reified event into an observer.
func emit[T any](o Observer[T], e Event[T]) {
	switch e.kind {
	case KindNext:
		o.OnNext(e.value)
	case KindError:
		o.OnError(e.err)
	default:
		o.OnCompleted()
	}
}

// disposed reports whether the subscription an observer feeds has been torn
// down. Synchronous producers poll it between emissions so that an early
// unsubscribe (take, elementAt) stops the loop.
func disposed[T any](o Observer[T]) bool {
	s, ok := o.(disposedChecker)
	return ok && s.IsDisposed()
}
