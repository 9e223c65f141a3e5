package tpcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_orderedIndex_InsertFindErase(t *testing.T) {
	idx := newOrderedIndex[string]()

	idx.Insert(10, "ten")
	idx.Insert(20, "twenty")
	idx.Insert(5, "five")

	v, ok := idx.Find(10)
	require.True(t, ok)
	require.Equal(t, "ten", v)

	_, ok = idx.Find(99)
	require.False(t, ok)

	idx.Erase(10)
	_, ok = idx.Find(10)
	require.False(t, ok)
	require.Equal(t, 2, idx.Len())
}

func Test_orderedIndex_LowerBound(t *testing.T) {
	idx := newOrderedIndex[string]()
	idx.Insert(5, "five")
	idx.Insert(10, "ten")
	idx.Insert(20, "twenty")

	key, v, ok := idx.LowerBound(6)
	require.True(t, ok)
	require.EqualValues(t, 10, key)
	require.Equal(t, "ten", v)

	_, _, ok = idx.LowerBound(21)
	require.False(t, ok)

	key, v, ok = idx.LowerBound(10)
	require.True(t, ok)
	require.EqualValues(t, 10, key)
	require.Equal(t, "ten", v)
}

func Test_orderedIndex_FindLastLessThan(t *testing.T) {
	idx := newOrderedIndex[string]()
	idx.Insert(5, "five")
	idx.Insert(10, "ten")
	idx.Insert(20, "twenty")

	key, v, ok := idx.FindLastLessThan(20)
	require.True(t, ok)
	require.EqualValues(t, 10, key)
	require.Equal(t, "ten", v)

	_, _, ok = idx.FindLastLessThan(5)
	require.False(t, ok)

	key, v, ok = idx.FindLastLessThan(21)
	require.True(t, ok)
	require.EqualValues(t, 20, key)
	require.Equal(t, "twenty", v)
}
