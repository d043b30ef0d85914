package rx

import "sync"

// AsyncSubject retains only the last value it has seen and emits it — to
// current and late subscribers alike — only once completed. An error
// discards the value and propagates instead.
type AsyncSubject[T any] struct {
	mu       sync.Mutex
	value    T
	hasValue bool
	list     observerList[T]
}

var _ Subject[int] = (*AsyncSubject[int])(nil)

func NewAsyncSubject[T any]() *AsyncSubject[T] {
	return &AsyncSubject[T]{}
}

func (s *AsyncSubject[T]) OnNext(v T) {
	s.mu.Lock()
	if s.list.terminal() == nil {
		s.value = v
		s.hasValue = true
	}
	s.mu.Unlock()
}

func (s *AsyncSubject[T]) OnError(err error) {
	for _, t := range s.list.terminate(Error[T](err)) {
		t.obs.OnError(err)
	}
}

func (s *AsyncSubject[T]) OnCompleted() {
	targets := s.list.terminate(Completed[T]())
	if targets == nil {
		return
	}
	s.mu.Lock()
	v, ok := s.value, s.hasValue
	s.mu.Unlock()
	for _, t := range targets {
		if ok {
			t.obs.OnNext(v)
		}
		t.obs.OnCompleted()
	}
}

func (s *AsyncSubject[T]) Subscribe(observer Observer[T]) Disposable {
	snk := newSink(observer)
	id, stop := s.list.attach(snk)
	if stop != nil {
		if stop.Kind() == KindCompleted {
			s.mu.Lock()
			v, ok := s.value, s.hasValue
			s.mu.Unlock()
			if ok {
				snk.OnNext(v)
			}
		}
		emit[T](snk, *stop)
		return snk
	}
	snk.setUpstream(NewDisposable(func() { s.list.detach(id) }))
	return snk
}

func (s *AsyncSubject[T]) AsObservable() Observable[T] {
	return Create(s.Subscribe)
}

func (s *AsyncSubject[T]) HasObservers() bool {
	return s.list.hasObservers()
}
