package rx

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	rec := newRecorder[string]()
	Map(Of(1, 2, 3), strconv.Itoa).Subscribe(rec)

	require.Equal(t, []string{"1", "2", "3"}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestMapErr(t *testing.T) {
	rec := newRecorder[int]()
	MapErr(Of("1", "two", "3"), strconv.Atoi).Subscribe(rec)

	require.Equal(t, []int{1}, rec.Values())
	require.Len(t, rec.Errors(), 1)
	require.Zero(t, rec.Completions())
}

func TestCompactMapToArrayRoundTrip(t *testing.T) {
	to, be, or := "To", "be", "or"
	source := Of(&to, &be, nil, &or)

	rec := newRecorder[[]string]()
	ToArray(CompactMap(source, func(p *string) (string, bool) {
		if p == nil {
			return "", false
		}
		return *p, true
	})).Subscribe(rec)

	require.Equal(t, [][]string{{"To", "be", "or"}}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestScanEmitsRunningAccumulation(t *testing.T) {
	rec := newRecorder[int]()
	Scan(Of(1, 2, 3), 0, func(acc, v int) int { return acc + v }).Subscribe(rec)

	require.Equal(t, []int{1, 3, 6}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestReduceEmitsOnceOnCompletion(t *testing.T) {
	rec := newRecorder[int]()
	Reduce(Of(1, 2, 3), 0, func(acc, v int) int { return acc + v }).Subscribe(rec)

	require.Equal(t, []int{6}, rec.Values())
	require.Equal(t, 1, rec.Completions())
}

func TestReduceEmitsNothingWithoutCompletion(t *testing.T) {
	subject := NewPublishSubject[int]()
	rec := newRecorder[int]()
	Reduce(subject.AsObservable(), 0, func(acc, v int) int { return acc + v }).Subscribe(rec)

	subject.OnNext(1)
	subject.OnNext(2)
	require.Empty(t, rec.Values())

	subject.OnCompleted()
	require.Equal(t, []int{3}, rec.Values())
}

func TestToArrayDiscardsPartialStateOnError(t *testing.T) {
	boom := errors.New("boom")
	rec := newRecorder[[]int]()
	ToArray(Concat(Of(1, 2), Throw[int](boom))).Subscribe(rec)

	require.Empty(t, rec.Values())
	require.Equal(t, []error{boom}, rec.Errors())
}

func TestMaterializeCarriesTerminalAsValue(t *testing.T) {
	boom := errors.New("boom")
	rec := newRecorder[Event[int]]()
	Materialize(Concat(Of(1), Throw[int](boom))).Subscribe(rec)

	events := rec.Values()
	require.Len(t, events, 2)
	assert.Equal(t, KindNext, events[0].Kind())
	assert.Equal(t, 1, events[0].Value())
	assert.Equal(t, KindError, events[1].Kind())
	assert.Equal(t, boom, events[1].Err())
	// the materialized stream itself completes normally
	require.Equal(t, 1, rec.Completions())
	require.Empty(t, rec.Errors())
}

func TestDematerializeRestoresEvents(t *testing.T) {
	rec := newRecorder[int]()
	Dematerialize(Materialize(Of(1, 2))).Subscribe(rec)

	require.Equal(t, []int{1, 2}, rec.Values())
	require.Equal(t, 1, rec.Completions())

	boom := errors.New("boom")
	errRec := newRecorder[int]()
	Dematerialize(Materialize(Throw[int](boom))).Subscribe(errRec)
	require.Equal(t, []error{boom}, errRec.Errors())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "next(1)", Next(1).String())
	assert.Equal(t, "error(boom)", Error[int](errors.New("boom")).String())
	assert.Equal(t, "completed", Completed[int]().String())
}
