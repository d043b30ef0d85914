package rx

// Relays are subjects restricted to Next events. The terminal methods are
// simply absent from the type, so a pipeline that must never end (UI state,
// long-lived feeds) cannot be terminated by accident — the mistake fails to
// compile instead of failing at run time.

// PublishRelay fans out accepted values to current observers only.
type PublishRelay[T any] struct {
	subject *PublishSubject[T]
}

func NewPublishRelay[T any]() *PublishRelay[T] {
	return &PublishRelay[T]{subject: NewPublishSubject[T]()}
}

// Accept pushes a value to all observers.
func (r *PublishRelay[T]) Accept(v T) {
	r.subject.OnNext(v)
}

func (r *PublishRelay[T]) Subscribe(observer Observer[T]) Disposable {
	return r.subject.Subscribe(observer)
}

func (r *PublishRelay[T]) AsObservable() Observable[T] {
	return r.subject.AsObservable()
}

func (r *PublishRelay[T]) HasObservers() bool {
	return r.subject.HasObservers()
}

// BehaviorRelay retains the latest accepted value and replays it to new
// observers.
type BehaviorRelay[T any] struct {
	subject *BehaviorSubject[T]
}

func NewBehaviorRelay[T any](value T) *BehaviorRelay[T] {
	return &BehaviorRelay[T]{subject: NewBehaviorSubject(value)}
}

func (r *BehaviorRelay[T]) Accept(v T) {
	r.subject.OnNext(v)
}

// Value returns the retained latest value.
func (r *BehaviorRelay[T]) Value() T {
	return r.subject.Value()
}

func (r *BehaviorRelay[T]) Subscribe(observer Observer[T]) Disposable {
	return r.subject.Subscribe(observer)
}

func (r *BehaviorRelay[T]) AsObservable() Observable[T] {
	return r.subject.AsObservable()
}

func (r *BehaviorRelay[T]) HasObservers() bool {
	return r.subject.HasObservers()
}
