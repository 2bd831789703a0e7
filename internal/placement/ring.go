package placement

import (
	"math/rand"

	"ch-placement/internal/vnode"
)

// ringAlgo is consistent hashing over a single sorted virtual-node
// table, walking clockwise from the nearest position and skipping
// virtual nodes whose physical server was already collected.
type ringAlgo struct {
	nSvrs uint32
	table []vnode.Node
}

func newRing(nSvrs, virtFactor uint32) Algorithm {
	return &ringAlgo{nSvrs: nSvrs, table: vnode.BuildSortedFlat(nSvrs, virtFactor)}
}

// nearestCmp mirrors the reference bsearch comparator: it returns -1 if
// obj sits strictly before table[idx], +1 if strictly after the range
// table[idx]..table[idx+1], and 0 when obj belongs to table[idx]'s
// range (table[idx].ID <= obj, and either idx is last or the next
// node's ID is above obj).
func nearestCmp(table []vnode.Node, idx int, obj uint64) int {
	id := table[idx].ID
	if obj < id {
		return -1
	}
	if obj > id {
		if idx == len(table)-1 {
			return 0
		}
		if table[idx+1].ID <= obj {
			return 1
		}
	}
	return 0
}

// floorIndex finds the table position owning obj: the largest index
// whose ID is <= obj, treating the table as circular so that an obj
// smaller than every ID belongs to the wraparound segment ending at the
// last index.
func floorIndex(table []vnode.Node, obj uint64) int {
	lo, hi := 0, len(table)
	for lo < hi {
		mid := (lo + hi) / 2
		switch c := nearestCmp(table, mid, obj); {
		case c < 0:
			hi = mid
		case c > 0:
			lo = mid + 1
		default:
			return mid
		}
	}
	return len(table) - 1
}

func walkDistinct(table []vnode.Node, start int, replication uint32) []uint32 {
	m := len(table)
	result := make([]uint32, replication)
	seen := make(map[uint32]bool, replication)
	current := start
	for i := uint32(0); i < replication; {
		if current == m {
			current = 0
		}
		server := table[current].Server
		if !seen[server] {
			seen[server] = true
			result[i] = server
			i++
		}
		current++
	}
	return result
}

func (r *ringAlgo) FindClosest(obj uint64, replication uint32) []uint32 {
	start := floorIndex(r.table, obj)
	return walkDistinct(r.table, start, replication)
}

func (r *ringAlgo) CreateStriped(fileSize uint64, replication, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) ([]uint64, []uint64) {
	return createStripedRandom(fileSize, maxStripeWidth, stripSize, rng)
}
