package dlist_test

import (
	"slices"
	"testing"

	"deedles.dev/dlist"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	l := dlist.Of(1, 2, 3)

	var fwd []int
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		require.True(t, it.Valid())
		fwd = append(fwd, it.Value())
	}
	require.Equal(t, []int{1, 2, 3}, fwd)

	var bwd []int
	for it := l.RBegin(); !it.Equal(l.REnd()); it = it.Next() {
		bwd = append(bwd, it.Value())
	}
	require.Equal(t, []int{3, 2, 1}, bwd)

	require.False(t, l.End().Valid())
	require.False(t, l.REnd().Valid())
	require.False(t, l.End().Equal(l.REnd()))
	require.Equal(t, dlist.Iterator[int]{}, l.End())
}

func TestIteratorEmpty(t *testing.T) {
	l := dlist.New[string]()
	require.True(t, l.Begin().Equal(l.End()))
	require.True(t, l.RBegin().Equal(l.REnd()))
}

func TestSequences(t *testing.T) {
	l := dlist.Of("a", "b", "c")

	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(l.Values()))
	require.Equal(t, []string{"c", "b", "a"}, slices.Collect(l.Backward()))

	// Each call starts over.
	seq := l.Values()
	require.Equal(t, slices.Collect(seq), slices.Collect(seq))

	var idx []int
	for i, v := range l.All() {
		idx = append(idx, i)
		require.Equal(t, l.Index(v), i)
	}
	require.Equal(t, []int{0, 1, 2}, idx)

	for v := range l.Values() {
		if v == "b" {
			break
		}
		require.Equal(t, "a", v)
	}
}

func TestRemoveWhileRanging(t *testing.T) {
	l := dlist.Of(1, 2, 3, 4, 5)
	for v := range l.Values() {
		if v%2 == 1 {
			require.NoError(t, l.PopItem(v))
		}
	}
	requireList(t, l, 2, 4)
}
