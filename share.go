package rx

import "sync"

// Share multicasts a single subscription to the source among any number of
// subscribers. The source is subscribed when the subscriber count goes from
// zero to one and disposed when it drops back to zero; after that a fresh
// subscriber starts the source over.
func Share[T any](source Observable[T]) Observable[T] {
	state := &shareState[T]{source: source}
	return Create(state.subscribe)
}

type shareState[T any] struct {
	mu         sync.Mutex
	source     Observable[T]
	subject    *PublishSubject[T]
	connection Disposable
	count      int
}

func (s *shareState[T]) subscribe(observer Observer[T]) Disposable {
	s.mu.Lock()
	if s.subject == nil {
		s.subject = NewPublishSubject[T]()
	}
	subject := s.subject
	s.count++
	connect := s.connection == nil
	if connect {
		// placeholder so a concurrent subscriber does not connect twice
		s.connection = Nop
	}
	s.mu.Unlock()

	sub := subject.Subscribe(observer)
	if connect {
		conn := s.source.Subscribe(subject)
		s.mu.Lock()
		s.connection = conn
		orphaned := s.count == 0
		s.mu.Unlock()
		if orphaned {
			conn.Dispose()
		}
	}
	return NewDisposable(func() {
		sub.Dispose()
		s.mu.Lock()
		s.count--
		var conn Disposable
		if s.count == 0 {
			conn = s.connection
			s.connection = nil
			s.subject = nil
		}
		s.mu.Unlock()
		if conn != nil {
			conn.Dispose()
		}
	})
}
