package placement

import (
	"math/rand"

	"ch-placement/internal/chhash"
)

// staticModulo is the non-consistent baseline algorithm: it hashes obj
// once and returns r consecutive servers starting at the hashed offset.
// NOTE: this is *not* a consistent hash — adding or removing a server
// reshuffles nearly every mapping. It exists as a cheap baseline to
// compare the real consistent-hashing algorithms against.
type staticModulo struct {
	nSvrs uint32
}

func newStaticModulo(nSvrs, virtFactor uint32) Algorithm {
	// virt_factor is accepted for interface uniformity but unused: this
	// algorithm has no virtual-node table.
	return &staticModulo{nSvrs: nSvrs}
}

func (s *staticModulo) FindClosest(obj uint64, replication uint32) []uint32 {
	buf := chhash.Uint64LE(obj)
	h1, h2 := chhash.HashLittle2(buf[:], 0, 0)
	hashedObj := uint64(h1) | (uint64(h2) << 32)

	out := make([]uint32, replication)
	out[0] = uint32(hashedObj % uint64(s.nSvrs))
	for k := uint32(1); k < replication; k++ {
		out[k] = (out[k-1] + 1) % s.nSvrs
	}
	return out
}

func (s *staticModulo) CreateStriped(fileSize uint64, replication, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) ([]uint64, []uint64) {
	return createStripedRandom(fileSize, maxStripeWidth, stripSize, rng)
}
