package comb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChoose_KnownValues(t *testing.T) {
	require.Equal(t, uint64(1), Choose(4, 0))
	require.Equal(t, uint64(4), Choose(4, 1))
	require.Equal(t, uint64(6), Choose(4, 2))
	require.Equal(t, uint64(4), Choose(4, 3))
	require.Equal(t, uint64(1), Choose(4, 4))
}

func TestChoose_Symmetric(t *testing.T) {
	require.Equal(t, Choose(10, 3), Choose(10, 7))
}

// Reference ordering from comb.h's doc comment: 4 choose 2 assigns
// indices 5,4,3,2,1,0 to {3,2},{3,1},{3,0},{2,1},{2,0},{1,0}.
func TestIndex_ReferenceOrdering(t *testing.T) {
	cases := []struct {
		vals []uint64
		want uint64
	}{
		{[]uint64{3, 2}, 5},
		{[]uint64{3, 1}, 4},
		{[]uint64{3, 0}, 3},
		{[]uint64{2, 1}, 2},
		{[]uint64{2, 0}, 1},
		{[]uint64{1, 0}, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Index(c.vals), "%v", c.vals)
	}
}

func TestIndex_OrderInsensitiveToInputOrder(t *testing.T) {
	require.Equal(t, Index([]uint64{3, 2}), Index([]uint64{2, 3}))
}

func TestIndex_DistinctForDistinctCombinations(t *testing.T) {
	seen := make(map[uint64]bool)
	combos := [][]uint64{{3, 2}, {3, 1}, {3, 0}, {2, 1}, {2, 0}, {1, 0}}
	for _, c := range combos {
		idx := Index(c)
		require.False(t, seen[idx], "%v collided at index %d", c, idx)
		seen[idx] = true
	}
}
