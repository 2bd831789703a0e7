// Package vnode builds the virtual-node tables the placement algorithms
// search over. Construction is always a pure function of (n_svrs,
// virt_factor); nothing here mutates a table after it is returned.
package vnode

import (
	"sort"

	"ch-placement/internal/chhash"
)

// Node is one virtual node: the physical server it belongs to and its
// 64-bit derived id.
type Node struct {
	Server uint32
	ID     uint64
}

// id computes the virt_id for (serverIdx, j) per the fixed construction
// rule: seed h1=j, h2=0, feed the 8 little-endian bytes of serverIdx
// through lookup3, and fold the two outputs into a 64-bit id.
func id(serverIdx uint32, j uint32) uint64 {
	h1, h2 := uint32(j), uint32(0)
	buf := chhash.Uint64LE(uint64(serverIdx))
	h1, h2 = chhash.HashLittle2(buf[:], h1, h2)
	return uint64(h1) | (uint64(h2) << 32)
}

// BuildFlat produces the unsorted N*virtFactor table, iteration order (j
// outer, i inner), used directly by the xor and hash-distance algorithms.
func BuildFlat(nSvrs, virtFactor uint32) []Node {
	table := make([]Node, 0, uint64(nSvrs)*uint64(virtFactor))
	for j := uint32(0); j < virtFactor; j++ {
		for i := uint32(0); i < nSvrs; i++ {
			table = append(table, Node{Server: i, ID: id(i, j)})
		}
	}
	return table
}

// BuildSortedFlat builds the same table as BuildFlat, then sorts it
// ascending by ID with a stable tie-break on insertion order, as required
// by the ring algorithm.
func BuildSortedFlat(nSvrs, virtFactor uint32) []Node {
	table := BuildFlat(nSvrs, virtFactor)
	sort.SliceStable(table, func(a, b int) bool {
		return table[a].ID < table[b].ID
	})
	return table
}

// BuildRings builds virtFactor independent rings, each holding exactly
// one virtual node per physical server, each sorted ascending by ID. Used
// by the multiring algorithm, where every physical server appears exactly
// once per ring so no duplicate-skipping is ever needed on lookup.
func BuildRings(nSvrs, virtFactor uint32) [][]Node {
	rings := make([][]Node, virtFactor)
	for j := uint32(0); j < virtFactor; j++ {
		ring := make([]Node, nSvrs)
		for i := uint32(0); i < nSvrs; i++ {
			ring[i] = Node{Server: i, ID: id(i, j)}
		}
		sort.SliceStable(ring, func(a, b int) bool {
			return ring[a].ID < ring[b].ID
		})
		rings[j] = ring
	}
	return rings
}
