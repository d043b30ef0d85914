package rx

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Subject is simultaneously an Observable and an Observer: values pushed in
// through the Observer side fan out to every attached observer. Once a
// terminal event has been pushed the subject rejects further calls as
// no-ops and hands the stored terminal event to late subscribers.
type Subject[T any] interface {
	Observer[T]
	Subscribe(Observer[T]) Disposable
	AsObservable() Observable[T]
	HasObservers() bool
}

// observerList is the shared fan-out state of every subject variant: the
// attached observers in insertion order, keyed by a subscription id that the
// returned Disposable uses solely to request removal, and the terminal event
// once the subject has stopped. All mutation is lock-guarded; delivery
// happens outside the lock on a snapshot.
type observerList[T any] struct {
	mu      sync.RWMutex
	targets []listTarget[T]
	nextID  uint64
	stop    *Event[T]
}

type listTarget[T any] struct {
	id  uint64
	obs Observer[T]
}

// attach adds an observer unless the list has terminated, in which case the
// stored terminal event is returned instead.
func (l *observerList[T]) attach(obs Observer[T]) (uint64, *Event[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		return 0, l.stop
	}
	l.nextID++
	l.targets = append(l.targets, listTarget[T]{id: l.nextID, obs: obs})
	return l.nextID, nil
}

func (l *observerList[T]) detach(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.targets {
		if l.targets[i].id == id {
			l.targets = append(l.targets[:i], l.targets[i+1:]...)
			return
		}
	}
}

func (l *observerList[T]) snapshot() []listTarget[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.stop != nil {
		return nil
	}
	return slices.Clone(l.targets)
}

// terminate stores the terminal event and detaches everyone, returning the
// observers the caller must deliver it to. Only the first call wins.
func (l *observerList[T]) terminate(e Event[T]) []listTarget[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		return nil
	}
	l.stop = &e
	targets := l.targets
	l.targets = nil
	return targets
}

func (l *observerList[T]) terminal() *Event[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stop
}

func (l *observerList[T]) hasObservers() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.targets) > 0
}

// PublishSubject relays events to its current observers only; late
// subscribers see nothing of what came before, except the terminal event of
// a stopped subject.
type PublishSubject[T any] struct {
	list observerList[T]
}

var _ Subject[int] = (*PublishSubject[int])(nil)

func NewPublishSubject[T any]() *PublishSubject[T] {
	return &PublishSubject[T]{}
}

func (s *PublishSubject[T]) OnNext(v T) {
	for _, t := range s.list.snapshot() {
		t.obs.OnNext(v)
	}
}

func (s *PublishSubject[T]) OnError(err error) {
	for _, t := range s.list.terminate(Error[T](err)) {
		t.obs.OnError(err)
	}
}

func (s *PublishSubject[T]) OnCompleted() {
	for _, t := range s.list.terminate(Completed[T]()) {
		t.obs.OnCompleted()
	}
}

func (s *PublishSubject[T]) Subscribe(observer Observer[T]) Disposable {
	snk := newSink(observer)
	id, stop := s.list.attach(snk)
	if stop != nil {
		emit[T](snk, *stop)
		return snk
	}
	snk.setUpstream(NewDisposable(func() { s.list.detach(id) }))
	return snk
}

func (s *PublishSubject[T]) AsObservable() Observable[T] {
	return Create(s.Subscribe)
}

func (s *PublishSubject[T]) HasObservers() bool {
	return s.list.hasObservers()
}
