package rx

import "fmt"

// EventKind discriminates the three event variants carried by a stream.
type EventKind string

const (
	KindNext      EventKind = "next"
	KindError     EventKind = "error"
	KindCompleted EventKind = "completed"
)

// Event is the payload flowing through every subscription: a value, an error
// or a completion marker. Error and Completed are terminal; once one of them
// has been delivered no further events follow on that subscription.
type Event[T any] struct {
	kind  EventKind
	value T
	err   error
}

// Next wraps a value.
func Next[T any](value T) Event[T] {
	return Event[T]{kind: KindNext, value: value}
}

// Error wraps a failure.
func Error[T any](err error) Event[T] {
	return Event[T]{kind: KindError, err: err}
}

// Completed marks the normal end of a stream.
func Completed[T any]() Event[T] {
	return Event[T]{kind: KindCompleted}
}

func (e Event[T]) Kind() EventKind { return e.kind }

// Value returns the wrapped value; the zero value for anything but Next.
func (e Event[T]) Value() T { return e.value }

// Err returns the wrapped error; nil for anything but Error.
func (e Event[T]) Err() error { return e.err }

// IsTerminal reports whether the event ends its subscription.
func (e Event[T]) IsTerminal() bool { return e.kind != KindNext }

func (e Event[T]) String() string {
	switch e.kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", e.value)
	case KindError:
		return fmt.Sprintf("error(%v)", e.err)
	default:
		return "completed"
	}
}
