package rx

import "sync"

// recorder collects everything an observer sees, for assertions.
type recorder[T any] struct {
	mu          sync.Mutex
	values      []T
	errs        []error
	completions int
}

func newRecorder[T any]() *recorder[T] {
	return &recorder[T]{}
}

func (r *recorder[T]) OnNext(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder[T]) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder[T]) OnCompleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions++
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func (r *recorder[T]) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

func (r *recorder[T]) Completions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completions
}

func (r *recorder[T]) Terminated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completions > 0 || len(r.errs) > 0
}
