package placement

import (
	"math/rand"

	"ch-placement/internal/chhash"
	"ch-placement/internal/vnode"
)

// hashLookup3Distance computes the commutative keyed distance the "hash"
// family of algorithms uses: sort (a, b) descending into (higher,
// lower), then hash lower's bytes with higher supplying the seed, so
// dist(a, b) == dist(b, a).
func hashLookup3Distance(a, b uint64) uint64 {
	higher, lower := a, b
	if b > a {
		higher, lower = b, a
	}
	h1 := uint32(higher & 0xFFFFFFFF)
	h2 := uint32((higher >> 32) & 0xFFFFFFFF)
	buf := chhash.Uint64LE(lower)
	h1, h2 = chhash.HashLittle2(buf[:], h1, h2)
	return uint64(h1) | (uint64(h2) << 32)
}

func hashSpookyDistance(a, b uint64) uint64 {
	higher, lower := a, b
	if b > a {
		higher, lower = b, a
	}
	buf := chhash.Uint64LE(lower)
	return chhash.SpookyHash64(buf[:], higher)
}

// hashDistAlgo is the closest-by-hashed-distance algorithm, shared by
// the hash_lookup3 and hash_spooky variants; they differ only in which
// hash primitive computes the distance.
type hashDistAlgo struct {
	nSvrs    uint32
	table    []vnode.Node
	distance func(a, b uint64) uint64
}

func newHashLookup3(nSvrs, virtFactor uint32) Algorithm {
	return &hashDistAlgo{
		nSvrs:    nSvrs,
		table:    vnode.BuildFlat(nSvrs, virtFactor),
		distance: hashLookup3Distance,
	}
}

func newHashSpooky(nSvrs, virtFactor uint32) Algorithm {
	return &hashDistAlgo{
		nSvrs:    nSvrs,
		table:    vnode.BuildFlat(nSvrs, virtFactor),
		distance: hashSpookyDistance,
	}
}

func (h *hashDistAlgo) FindClosest(obj uint64, replication uint32) []uint32 {
	return closestDistinctServers(h.table, h.nSvrs, replication, func(virtID uint64) uint64 {
		return h.distance(obj, virtID)
	})
}

func (h *hashDistAlgo) CreateStriped(fileSize uint64, replication, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) ([]uint64, []uint64) {
	return createStripedRandom(fileSize, maxStripeWidth, stripSize, rng)
}
