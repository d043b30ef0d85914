package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	rec := newRecorder[int]()
	Filter(Of(1, 2, 3, 4), func(v int) bool { return v%2 == 0 }).Subscribe(rec)

	require.Equal(t, []int{2, 4}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestSkipAndTake(t *testing.T) {
	skipped := newRecorder[int]()
	Skip(Of(1, 2, 3, 4), 2).Subscribe(skipped)
	require.Equal(t, []int{3, 4}, skipped.Values())

	taken := newRecorder[int]()
	Take(Of(1, 2, 3, 4), 2).Subscribe(taken)
	require.Equal(t, []int{1, 2}, taken.Values())
	require.Equal(t, 1, taken.Completions())
}

func TestTakeUnsubscribesSourceEarly(t *testing.T) {
	subject := NewPublishSubject[int]()
	rec := newRecorder[int]()
	Take(subject.AsObservable(), 2).Subscribe(rec)

	subject.OnNext(1)
	require.True(t, subject.HasObservers())
	subject.OnNext(2)

	require.Equal(t, []int{1, 2}, rec.Values())
	require.Equal(t, 1, rec.Completions())
	require.False(t, subject.HasObservers())
}

func TestTakeZeroCompletesImmediately(t *testing.T) {
	rec := newRecorder[int]()
	Take(Never[int](), 0).Subscribe(rec)
	require.Equal(t, 1, rec.Completions())
}

func TestSkipWhileFlipsPermanently(t *testing.T) {
	rec := newRecorder[int]()
	SkipWhile(Of(2, 4, 5, 2), func(v int) bool { return v%2 == 0 }).Subscribe(rec)

	// once 5 fails the predicate, the trailing even value passes through
	require.Equal(t, []int{5, 2}, rec.Values())
}

func TestTakeWhileStopsPermanently(t *testing.T) {
	rec := newRecorder[int]()
	TakeWhile(Of(2, 4, 5, 2), func(v int) bool { return v%2 == 0 }).Subscribe(rec)

	require.Equal(t, []int{2, 4}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestTakeWhileInclusiveForwardsBoundary(t *testing.T) {
	rec := newRecorder[int]()
	TakeWhileInclusive(Of(2, 4, 5, 2), func(v int) bool { return v%2 == 0 }).Subscribe(rec)

	require.Equal(t, []int{2, 4, 5}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestElementAt(t *testing.T) {
	subject := NewPublishSubject[string]()
	rec := newRecorder[string]()
	ElementAt(subject.AsObservable(), 1).Subscribe(rec)

	subject.OnNext("a")
	subject.OnNext("b")
	subject.OnNext("c")

	require.Equal(t, []string{"b"}, rec.Values())
	require.Equal(t, 1, rec.Completions())
	require.False(t, subject.HasObservers())
}

func TestDistinctUntilChangedWindowIsOneElement(t *testing.T) {
	rec := newRecorder[int]()
	DistinctUntilChanged(Of(1, 1, 2, 2, 1)).Subscribe(rec)

	require.Equal(t, []int{1, 2, 1}, rec.Values())
}

func TestDistinctUntilChangedFunc(t *testing.T) {
	rec := newRecorder[string]()
	DistinctUntilChangedFunc(Of("a", "A", "b"), func(x, y string) bool {
		return len(x) == len(y) && (x == y || x == "a" && y == "A")
	}).Subscribe(rec)

	require.Equal(t, []string{"a", "b"}, rec.Values())
}

func TestSkipUntil(t *testing.T) {
	source := NewPublishSubject[int]()
	trigger := NewPublishSubject[struct{}]()
	rec := newRecorder[int]()
	SkipUntil(source.AsObservable(), trigger.AsObservable()).Subscribe(rec)

	source.OnNext(1)
	source.OnNext(2)
	require.Empty(t, rec.Values())

	trigger.OnNext(struct{}{})
	source.OnNext(3)
	source.OnNext(4)
	require.Equal(t, []int{3, 4}, rec.Values())
}

func TestTakeUntilBoundary(t *testing.T) {
	source := NewPublishSubject[int]()
	trigger := NewPublishSubject[struct{}]()
	rec := newRecorder[int]()
	TakeUntil(source.AsObservable(), trigger.AsObservable()).Subscribe(rec)

	source.OnNext(1)
	source.OnNext(2)
	trigger.OnNext(struct{}{})
	source.OnNext(3)

	require.Equal(t, []int{1, 2}, rec.Values())
	require.Equal(t, 1, rec.Completions())
	assert.False(t, source.HasObservers())
}

func TestTakeUntilIgnoresTriggerCompletion(t *testing.T) {
	source := NewPublishSubject[int]()
	rec := newRecorder[int]()
	TakeUntil(source.AsObservable(), Empty[struct{}]()).Subscribe(rec)

	source.OnNext(1)
	require.Equal(t, []int{1}, rec.Values())
	require.False(t, rec.Terminated())
}
