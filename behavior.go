package rx

import "sync"

// BehaviorSubject retains exactly one latest value, seeded at construction;
// every new subscriber immediately receives it before live events. A late
// subscriber to a stopped subject receives the retained value followed by
// the terminal event.
type BehaviorSubject[T any] struct {
	mu    sync.Mutex
	value T
	list  observerList[T]
}

var _ Subject[int] = (*BehaviorSubject[int])(nil)

func NewBehaviorSubject[T any](value T) *BehaviorSubject[T] {
	return &BehaviorSubject[T]{value: value}
}

// Value returns the retained latest value.
func (s *BehaviorSubject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *BehaviorSubject[T]) OnNext(v T) {
	s.mu.Lock()
	s.value = v
	targets := s.list.snapshot()
	s.mu.Unlock()
	for _, t := range targets {
		t.obs.OnNext(v)
	}
}

func (s *BehaviorSubject[T]) OnError(err error) {
	for _, t := range s.list.terminate(Error[T](err)) {
		t.obs.OnError(err)
	}
}

func (s *BehaviorSubject[T]) OnCompleted() {
	for _, t := range s.list.terminate(Completed[T]()) {
		t.obs.OnCompleted()
	}
}

func (s *BehaviorSubject[T]) Subscribe(observer Observer[T]) Disposable {
	snk := newSink(observer)
	s.mu.Lock()
	current := s.value
	id, stop := s.list.attach(snk)
	s.mu.Unlock()
	if stop != nil {
		snk.OnNext(current)
		emit[T](snk, *stop)
		return snk
	}
	snk.OnNext(current)
	snk.setUpstream(NewDisposable(func() { s.list.detach(id) }))
	return snk
}

func (s *BehaviorSubject[T]) AsObservable() Observable[T] {
	return Create(s.Subscribe)
}

func (s *BehaviorSubject[T]) HasObservers() bool {
	return s.list.hasObservers()
}
