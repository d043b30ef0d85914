package rx

import (
	"sync"

	"github.com/ef-ds/deque"
)

// ReplaySubject keeps a bounded queue of the most recent values and replays
// it, oldest first, to every new subscriber before live events. A late
// subscriber to a stopped subject receives the buffer followed by the
// terminal event.
type ReplaySubject[T any] struct {
	mu     sync.Mutex
	buffer *deque.Deque
	size   int
	list   observerList[T]
}

var _ Subject[int] = (*ReplaySubject[int])(nil)

// NewReplaySubject creates a subject replaying at most bufferSize values.
// bufferSize < 1 is treated as 1.
func NewReplaySubject[T any](bufferSize int) *ReplaySubject[T] {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &ReplaySubject[T]{buffer: deque.New(), size: bufferSize}
}

func (s *ReplaySubject[T]) OnNext(v T) {
	s.mu.Lock()
	if s.list.terminal() == nil {
		s.buffer.PushBack(v)
		if s.buffer.Len() > s.size {
			s.buffer.PopFront()
		}
	}
	targets := s.list.snapshot()
	s.mu.Unlock()
	for _, t := range targets {
		t.obs.OnNext(v)
	}
}

func (s *ReplaySubject[T]) OnError(err error) {
	for _, t := range s.list.terminate(Error[T](err)) {
		t.obs.OnError(err)
	}
}

func (s *ReplaySubject[T]) OnCompleted() {
	for _, t := range s.list.terminate(Completed[T]()) {
		t.obs.OnCompleted()
	}
}

func (s *ReplaySubject[T]) Subscribe(observer Observer[T]) Disposable {
	snk := newSink(observer)
	s.mu.Lock()
	replay := s.bufferedLocked()
	id, stop := s.list.attach(snk)
	s.mu.Unlock()
	for _, v := range replay {
		snk.OnNext(v)
	}
	if stop != nil {
		emit[T](snk, *stop)
		return snk
	}
	snk.setUpstream(NewDisposable(func() { s.list.detach(id) }))
	return snk
}

// bufferedLocked copies the replay queue in order. The deque has no
// iterator, so the entries are rotated through it once.
func (s *ReplaySubject[T]) bufferedLocked() []T {
	n := s.buffer.Len()
	if n == 0 {
		return nil
	}
	values := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, _ := s.buffer.PopFront()
		values = append(values, v.(T))
		s.buffer.PushBack(v)
	}
	return values
}

func (s *ReplaySubject[T]) AsObservable() Observable[T] {
	return Create(s.Subscribe)
}

func (s *ReplaySubject[T]) HasObservers() bool {
	return s.list.hasObservers()
}
