package rx

import (
	"sync"

	"github.com/ef-ds/deque"
)

// Observable is a cold, subscription-triggered producer of a value sequence.
// It owns no resources until subscribed, and every subscription is
// independent. The zero value never emits.
type Observable[T any] struct {
	onSubscribe func(Observer[T]) Disposable
}

// Create builds an Observable from a subscribe function, the terminal
// primitive every other constructor and operator reduces to. The function
// receives an observer proxy and returns a Disposable used for teardown.
//
// The proxy enforces the stream contract on behalf of the producer: events
// after a terminal event or after disposal are dropped, each event finishes
// its downstream traversal before the next one is forwarded, and the
// teardown Disposable is disposed exactly once when the subscription ends.
func Create[T any](onSubscribe func(Observer[T]) Disposable) Observable[T] {
	return Observable[T]{onSubscribe: onSubscribe}
}

// Subscribe attaches an observer and starts the producer. The returned
// Disposable cancels the subscription and transitively tears down every
// inner subscription the pipeline holds.
func (o Observable[T]) Subscribe(observer Observer[T]) Disposable {
	if o.onSubscribe == nil {
		return Nop
	}
	s := newSink(observer)
	s.setUpstream(o.onSubscribe(s))
	return s
}

// SubscribeNext subscribes with a value handler only.
func (o Observable[T]) SubscribeNext(next func(T)) Disposable {
	return o.Subscribe(NewObserver[T](next, nil, nil))
}

// SubscribeEvents subscribes with per-event handlers, any of which may be nil.
func (o Observable[T]) SubscribeEvents(next func(T), err func(error), completed func()) Disposable {
	return o.Subscribe(NewObserver(next, err, completed))
}

// sink wraps the downstream observer of one subscription. It is both the
// observer handed to the producer and the Disposable handed back to the
// subscriber.
//
// Delivery is serialized with a queue drain: the first caller becomes the
// emitter and delivers queued events until none remain, so concurrent or
// reentrant notifications never interleave mid-delivery.
type sink[T any] struct {
	mu       sync.Mutex
	dst      Observer[T]
	queue    *deque.Deque
	emitting bool
	done     bool
	upstream Disposable
}

func newSink[T any](dst Observer[T]) *sink[T] {
	return &sink[T]{dst: dst}
}

func (s *sink[T]) OnNext(v T)        { s.on(Next(v)) }
func (s *sink[T]) OnError(err error) { s.on(Error[T](err)) }
func (s *sink[T]) OnCompleted()      { s.on(Completed[T]()) }

func (s *sink[T]) on(e Event[T]) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	if s.emitting {
		if s.queue == nil {
			s.queue = deque.New()
		}
		s.queue.PushBack(e)
		s.mu.Unlock()
		return
	}
	s.emitting = true
	s.mu.Unlock()

	for {
		s.deliver(e)
		s.mu.Lock()
		if s.done || s.queue == nil || s.queue.Len() == 0 {
			s.emitting = false
			s.mu.Unlock()
			return
		}
		next, _ := s.queue.PopFront()
		e = next.(Event[T])
		s.mu.Unlock()
	}
}

func (s *sink[T]) deliver(e Event[T]) {
	switch e.kind {
	case KindNext:
		s.dst.OnNext(e.value)
	case KindError:
		s.terminate()
		s.dst.OnError(e.err)
	default:
		s.terminate()
		s.dst.OnCompleted()
	}
}

// terminate marks the subscription finished and tears down the upstream.
// Safe to call more than once.
func (s *sink[T]) terminate() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	up := s.upstream
	s.mu.Unlock()
	if up != nil {
		up.Dispose()
	}
}

func (s *sink[T]) Dispose() { s.terminate() }

// IsDisposed also consults the downstream chain, so a producer polling its
// direct sink observes an unsubscribe that happened further down.
func (s *sink[T]) IsDisposed() bool {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done {
		return true
	}
	if c, ok := s.dst.(disposedChecker); ok {
		return c.IsDisposed()
	}
	return false
}

// setUpstream hands the producer's teardown to the sink. If the subscription
// already ended while the producer was emitting synchronously, the teardown
// runs immediately.
func (s *sink[T]) setUpstream(d Disposable) {
	if d == nil {
		d = Nop
	}
	s.mu.Lock()
	s.upstream = d
	done := s.done
	s.mu.Unlock()
	if done {
		d.Dispose()
	}
}
