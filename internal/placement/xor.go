package placement

import (
	"math/rand"

	"ch-placement/internal/vnode"
)

// xorAlgo picks the r closest servers by minimizing (obj XOR virt_id)
// over the flat, unsorted virtual-node table.
type xorAlgo struct {
	nSvrs uint32
	table []vnode.Node
}

func newXOR(nSvrs, virtFactor uint32) Algorithm {
	return &xorAlgo{nSvrs: nSvrs, table: vnode.BuildFlat(nSvrs, virtFactor)}
}

func (x *xorAlgo) FindClosest(obj uint64, replication uint32) []uint32 {
	return closestDistinctServers(x.table, x.nSvrs, replication, func(virtID uint64) uint64 {
		return obj ^ virtID
	})
}

func (x *xorAlgo) CreateStriped(fileSize uint64, replication, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) ([]uint64, []uint64) {
	return createStripedRandom(fileSize, maxStripeWidth, stripSize, rng)
}
