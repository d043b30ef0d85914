package rx

import "fmt"

// CallbackPanicError reports a panic raised by a user-supplied callback
// (selector, predicate, accumulator). Operators recover such panics at their
// boundary and convert them into an Error event on the output stream, so a
// faulty callback terminates the one subscription instead of the process.
type CallbackPanicError struct {
	Op    string
	Value any
}

func (e *CallbackPanicError) Error() string {
	return fmt.Sprintf("rx: %s callback panicked: %v", e.Op, e.Value)
}

// tryApply invokes a user callback under the panic guard. On panic the error
// is pushed to out and ok is false.
func tryApply[T, U any](op string, f func(T) U, v T, out interface{ OnError(error) }) (u U, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			out.OnError(&CallbackPanicError{Op: op, Value: r})
		}
	}()
	return f(v), true
}

// tryRun is tryApply for side-effect hooks without a result.
func tryRun(op string, f func(), out interface{ OnError(error) }) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			out.OnError(&CallbackPanicError{Op: op, Value: r})
		}
	}()
	f()
	return true
}
