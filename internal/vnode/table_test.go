package vnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFlat_Cardinality(t *testing.T) {
	table := BuildFlat(10, 4)
	require.Len(t, table, 40)
}

func TestBuildFlat_EveryServerAppearsVirtFactorTimes(t *testing.T) {
	const nSvrs, virtFactor = 6, 5
	table := BuildFlat(nSvrs, virtFactor)
	counts := make(map[uint32]int)
	for _, n := range table {
		counts[n.Server]++
	}
	require.Len(t, counts, nSvrs)
	for s := uint32(0); s < nSvrs; s++ {
		require.Equal(t, virtFactor, counts[s])
	}
}

func TestBuildFlat_Deterministic(t *testing.T) {
	a := BuildFlat(8, 3)
	b := BuildFlat(8, 3)
	require.Equal(t, a, b)
}

func TestBuildSortedFlat_IsSortedAscending(t *testing.T) {
	table := BuildSortedFlat(12, 8)
	for i := 1; i < len(table); i++ {
		require.LessOrEqual(t, table[i-1].ID, table[i].ID)
	}
}

func TestBuildSortedFlat_SameMultisetAsBuildFlat(t *testing.T) {
	flat := BuildFlat(9, 4)
	sorted := BuildSortedFlat(9, 4)
	require.ElementsMatch(t, flat, sorted)
}

func TestBuildRings_OneServerPerRing(t *testing.T) {
	const nSvrs, virtFactor = 7, 5
	rings := BuildRings(nSvrs, virtFactor)
	require.Len(t, rings, virtFactor)
	for _, ring := range rings {
		require.Len(t, ring, nSvrs)
		seen := make(map[uint32]bool)
		for _, n := range ring {
			require.False(t, seen[n.Server], "server appears twice in one ring")
			seen[n.Server] = true
		}
	}
}

func TestBuildRings_SortedWithinRing(t *testing.T) {
	rings := BuildRings(10, 3)
	for _, ring := range rings {
		for i := 1; i < len(ring); i++ {
			require.LessOrEqual(t, ring[i-1].ID, ring[i].ID)
		}
	}
}
