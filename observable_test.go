package rx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJust(t *testing.T) {
	rec := newRecorder[string]()
	Just("hello").Subscribe(rec)

	require.Equal(t, []string{"hello"}, rec.Values())
	require.Equal(t, 1, rec.Completions())
	require.Empty(t, rec.Errors())
}

func TestOfEmitsInOrder(t *testing.T) {
	rec := newRecorder[int]()
	Of(1, 2, 3).Subscribe(rec)

	require.Equal(t, []int{1, 2, 3}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestRange(t *testing.T) {
	rec := newRecorder[int]()
	Range(5, 3).Subscribe(rec)

	require.Equal(t, []int{5, 6, 7}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestEmptyAndNever(t *testing.T) {
	rec := newRecorder[int]()
	Empty[int]().Subscribe(rec)
	require.Empty(t, rec.Values())
	require.Equal(t, 1, rec.Completions())

	silent := newRecorder[int]()
	Never[int]().Subscribe(silent)
	require.Empty(t, silent.Values())
	require.False(t, silent.Terminated())
}

func TestThrow(t *testing.T) {
	boom := errors.New("boom")
	rec := newRecorder[int]()
	Throw[int](boom).Subscribe(rec)

	require.Equal(t, []error{boom}, rec.Errors())
	require.Zero(t, rec.Completions())
}

func TestCreateTerminalExclusivity(t *testing.T) {
	rec := newRecorder[int]()
	Create(func(o Observer[int]) Disposable {
		o.OnNext(1)
		o.OnCompleted()
		o.OnNext(2)
		o.OnError(errors.New("late"))
		o.OnCompleted()
		return Nop
	}).Subscribe(rec)

	require.Equal(t, []int{1}, rec.Values())
	require.Equal(t, 1, rec.Completions())
	require.Empty(t, rec.Errors())
}

func TestColdSubscriptionsAreIndependent(t *testing.T) {
	source := Of(1, 2)
	first := newRecorder[int]()
	second := newRecorder[int]()
	source.Subscribe(first)
	source.Subscribe(second)

	require.Equal(t, []int{1, 2}, first.Values())
	require.Equal(t, []int{1, 2}, second.Values())
}

func TestDeferredInvokesFactoryPerSubscription(t *testing.T) {
	calls := 0
	source := Deferred(func() Observable[int] {
		calls++
		return Just(calls)
	})

	first := newRecorder[int]()
	second := newRecorder[int]()
	source.Subscribe(first)
	source.Subscribe(second)

	require.Equal(t, 2, calls)
	require.Equal(t, []int{1}, first.Values())
	require.Equal(t, []int{2}, second.Values())
}

func TestCreateRunsTeardownOnce(t *testing.T) {
	teardowns := 0
	sub := Create(func(o Observer[int]) Disposable {
		return NewDisposable(func() { teardowns++ })
	}).Subscribe(newRecorder[int]())

	sub.Dispose()
	sub.Dispose()
	require.Equal(t, 1, teardowns)
	require.True(t, sub.IsDisposed())
}

func TestSynchronousTerminalDisposesTeardown(t *testing.T) {
	teardowns := 0
	Create(func(o Observer[int]) Disposable {
		o.OnCompleted()
		return NewDisposable(func() { teardowns++ })
	}).Subscribe(newRecorder[int]())

	require.Equal(t, 1, teardowns)
}

func TestCallbackPanicBecomesErrorEvent(t *testing.T) {
	rec := newRecorder[int]()
	Map(Of(1, 2), func(int) int {
		panic("selector exploded")
	}).Subscribe(rec)

	require.Len(t, rec.Errors(), 1)
	var cbErr *CallbackPanicError
	require.ErrorAs(t, rec.Errors()[0], &cbErr)
	assert.Equal(t, "map", cbErr.Op)
	assert.Empty(t, rec.Values())
}

func TestFromChan(t *testing.T) {
	ch := make(chan int)
	rec := newRecorder[int]()
	FromChan[int](ch).Subscribe(rec)

	go func() {
		ch <- 1
		ch <- 2
		close(ch)
	}()

	require.Eventually(t, rec.Terminated, time.Second, time.Millisecond)
	require.Equal(t, []int{1, 2}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestFromChanDisposeStopsDelivery(t *testing.T) {
	ch := make(chan int, 4)
	rec := newRecorder[int]()
	sub := FromChan[int](ch).Subscribe(rec)
	sub.Dispose()

	ch <- 1
	close(ch)
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, rec.Values())
	assert.False(t, rec.Terminated())
}

func TestTimer(t *testing.T) {
	rec := newRecorder[int]()
	Timer(5 * time.Millisecond).Subscribe(rec)

	require.Eventually(t, rec.Terminated, time.Second, time.Millisecond)
	require.Equal(t, []int{0}, rec.Values())
}

func TestIntervalWithTake(t *testing.T) {
	rec := newRecorder[int]()
	Take(Interval(2*time.Millisecond), 3).Subscribe(rec)

	require.Eventually(t, rec.Terminated, time.Second, time.Millisecond)
	require.Equal(t, []int{0, 1, 2}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestSubscribeNextDropsErrorSilently(t *testing.T) {
	var got []int
	Concat(Of(1), Throw[int](errors.New("ignored"))).SubscribeNext(func(v int) {
		got = append(got, v)
	})
	require.Equal(t, []int{1}, got)
}
