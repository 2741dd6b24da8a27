package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GaelEmiliano/edd/abstract"
	"github.com/GaelEmiliano/edd/list"
)

func TestAppendPrepend(t *testing.T) {
	l := list.New[int]()
	require.NoError(t, l.Append(2))
	require.NoError(t, l.Append(3))
	require.NoError(t, l.Prepend(1))
	require.Equal(t, []int{1, 2, 3}, l.Slice())
	require.Equal(t, 3, l.Len())
}

func TestOf(t *testing.T) {
	l := list.Of(1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestInsertAtClampsIndex(t *testing.T) {
	l := list.Of(1, 3)
	require.NoError(t, l.InsertAt(1, 2))
	require.Equal(t, []int{1, 2, 3}, l.Slice())
	require.NoError(t, l.InsertAt(-5, 0))
	require.NoError(t, l.InsertAt(100, 4))
	require.Equal(t, []int{0, 1, 2, 3, 4}, l.Slice())
}

func TestDeleteFirstOccurrence(t *testing.T) {
	l := list.Of(1, 2, 1, 3)
	require.True(t, l.Delete(1))
	require.Equal(t, []int{2, 1, 3}, l.Slice())
	require.True(t, l.Delete(3))
	require.Equal(t, []int{2, 1}, l.Slice())
	require.False(t, l.Delete(9))
	require.Equal(t, 2, l.Len())
}

func TestPopEnds(t *testing.T) {
	l := list.Of(1, 2, 3)
	v, err := l.PopFirst()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	v, err = l.PopLast()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, []int{2}, l.Slice())

	v, err = l.PopLast()
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.True(t, l.IsEmpty())
	_, err = l.PopFirst()
	require.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.PopLast()
	require.ErrorIs(t, err, list.ErrEmpty)
}

func TestFirstLastGet(t *testing.T) {
	l := list.Of(10, 20, 30)
	v, err := l.First()
	require.NoError(t, err)
	require.Equal(t, 10, v)
	v, err = l.Last()
	require.NoError(t, err)
	require.Equal(t, 30, v)
	v, err = l.Get(1)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	_, err = l.Get(3)
	require.ErrorIs(t, err, list.ErrEmpty)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, list.ErrEmpty)
}

func TestIndexOfContains(t *testing.T) {
	l := list.Of(5, 6, 5)
	require.Equal(t, 0, l.IndexOf(5))
	require.Equal(t, 1, l.IndexOf(6))
	require.Equal(t, -1, l.IndexOf(7))
	require.True(t, l.Contains(6))
	require.False(t, l.Contains(7))
}

func TestReverseCopy(t *testing.T) {
	l := list.Of(1, 2, 3)
	r := l.Reverse()
	require.Equal(t, []int{3, 2, 1}, r.Slice())
	require.Equal(t, []int{1, 2, 3}, l.Slice())

	c := l.Copy()
	require.Equal(t, l.Slice(), c.Slice())
	require.NoError(t, c.Append(4))
	require.Equal(t, 3, l.Len())
}

func TestNilRejected(t *testing.T) {
	l := list.New[*int]()
	require.ErrorIs(t, l.Append(nil), abstract.ErrNilValue)
	require.ErrorIs(t, l.Prepend(nil), abstract.ErrNilValue)
	require.True(t, l.IsEmpty())
}

func TestIteratorBothDirections(t *testing.T) {
	l := list.Of(1, 2, 3)
	var fwd []int
	it := l.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fwd = append(fwd, it.Cur())
	}
	require.Equal(t, []int{1, 2, 3}, fwd)

	var back []int
	for it.Last(); it.Valid(); it.Prev() {
		back = append(back, it.Cur())
	}
	require.Equal(t, []int{3, 2, 1}, back)
}

func TestClear(t *testing.T) {
	l := list.Of(1, 2)
	l.Clear()
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	require.NoError(t, l.Append(9))
	require.Equal(t, []int{9}, l.Slice())
}
