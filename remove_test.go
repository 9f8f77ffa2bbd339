package dlist_test

import (
	"testing"

	"deedles.dev/dlist"
	"github.com/stretchr/testify/require"
)

func TestPopEnds(t *testing.T) {
	l := dlist.Of(1, 2, 3)

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	requireList(t, l, 2, 3)

	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	requireList(t, l, 2)

	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	requireList(t, l)

	_, err = l.PopFront()
	require.ErrorIs(t, err, dlist.ErrEmpty)
	_, err = l.PopBack()
	require.ErrorIs(t, err, dlist.ErrEmpty)
	requireList(t, l)

	l.PushBack(4)
	requireList(t, l, 4)
}

func TestPop(t *testing.T) {
	l := dlist.Of(10, 20, 30, 40)

	v, err := l.Pop(2)
	require.NoError(t, err)
	require.Equal(t, 30, v)
	requireList(t, l, 10, 20, 40)

	v, err = l.Pop(0)
	require.NoError(t, err)
	require.Equal(t, 10, v)
	requireList(t, l, 20, 40)

	_, err = l.Pop(2)
	require.ErrorIs(t, err, dlist.ErrIndexOutOfRange)
	_, err = l.Pop(-1)
	require.ErrorIs(t, err, dlist.ErrIndexOutOfRange)
	requireList(t, l, 20, 40)
}

func TestPopItem(t *testing.T) {
	l := dlist.Of(1, 2, 3, 2)
	require.NoError(t, l.PopItem(2))
	requireList(t, l, 1, 3, 2)

	require.ErrorIs(t, l.PopItem(9), dlist.ErrItemNotFound)
	requireList(t, l, 1, 3, 2)
}

func TestPopRange(t *testing.T) {
	l := dlist.Of(10, 20, 30, 40)
	require.NoError(t, l.PopRange(1, 2))
	requireList(t, l, 10, 40)

	require.ErrorIs(t, l.PopRange(1, 0), dlist.ErrInvalidRange)
	require.ErrorIs(t, l.PopRange(0, 2), dlist.ErrIndexOutOfRange)
	require.ErrorIs(t, l.PopRange(-1, 1), dlist.ErrIndexOutOfRange)
	requireList(t, l, 10, 40)

	require.NoError(t, l.PopRange(0, 1))
	requireList(t, l)

	l = dlist.Of(1, 2, 3)
	require.NoError(t, l.PopRange(1, 1))
	requireList(t, l, 1, 3)
}

func TestPopRangeItem(t *testing.T) {
	l := dlist.Of(1, 2, 3, 4, 5, 6)
	require.NoError(t, l.PopRangeItem(2, 4))
	requireList(t, l, 1, 5, 6)

	require.ErrorIs(t, l.PopRangeItem(5, 5), dlist.ErrInvalidRange)
	requireList(t, l, 1, 5, 6)
	require.NoError(t, l.PopRangeItem(5, 6))
	requireList(t, l, 1)
	l.PushBack(6)

	require.ErrorIs(t, l.PopRangeItem(9, 6), dlist.ErrItemNotFound)
	require.ErrorIs(t, l.PopRangeItem(1, 9), dlist.ErrItemNotFound)
	require.ErrorIs(t, l.PopRangeItem(6, 1), dlist.ErrInvalidRange)
	requireList(t, l, 1, 6)

	require.NoError(t, l.PopRangeItem(1, 6))
	requireList(t, l)
}

func TestPopRangeItemLaterOccurrence(t *testing.T) {
	l := dlist.Of(3, 1, 2, 3, 4)
	require.NoError(t, l.PopRangeItem(1, 3))
	requireList(t, l, 3, 4)
}

func TestPopRangeItemSameValue(t *testing.T) {
	l := dlist.Of(1, 2, 1, 3)
	require.NoError(t, l.PopRangeItem(1, 1))
	requireList(t, l, 3)

	l = dlist.Of(5, 6)
	require.ErrorIs(t, l.PopRangeItem(5, 5), dlist.ErrInvalidRange)
	requireList(t, l, 5, 6)
}
