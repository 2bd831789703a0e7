package placement

import (
	"sort"

	"ch-placement/internal/vnode"
)

// closestDistinctServers picks the replication servers whose closest
// virtual node (by distance) is smallest, breaking ties by ascending
// server index for a stable, reproducible order. This is the "widen the
// scan until r distinct servers" rule from the duplicate-distinctness
// Open Question, expressed as its equivalent closed form: the order in
// which distinct servers first appear while scanning all virtual nodes
// in ascending distance order is exactly the order of servers by their
// own minimum distance, so computing the per-server minimum directly
// gives the same result in one pass over the table instead of a widening
// rescan.
func closestDistinctServers(table []vnode.Node, nSvrs, replication uint32, distance func(virtID uint64) uint64) []uint32 {
	best := make([]uint64, nSvrs)
	seen := make([]bool, nSvrs)
	for _, node := range table {
		d := distance(node.ID)
		if !seen[node.Server] || d < best[node.Server] {
			best[node.Server] = d
			seen[node.Server] = true
		}
	}

	type candidate struct {
		server uint32
		dist   uint64
	}
	candidates := make([]candidate, nSvrs)
	for s := uint32(0); s < nSvrs; s++ {
		candidates[s] = candidate{server: s, dist: best[s]}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].server < candidates[j].server
	})

	out := make([]uint32, replication)
	for i := uint32(0); i < replication; i++ {
		out[i] = candidates[i].server
	}
	return out
}
