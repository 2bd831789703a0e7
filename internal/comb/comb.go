// Package comb implements the small combinatorial helpers the
// combinatorial-statistics writer (spec.md §6) needs to turn a set of
// server indices into a canonical position within C(n, k): a direct
// generalization of the reference comb.h.
package comb

import "sort"

// Choose returns C(n, k), the binomial coefficient, computed
// iteratively to avoid the factorial overflow a naive n!/(k!(n-k)!)
// would hit even for modest n.
func Choose(n, k uint64) uint64 {
	res := uint64(1)
	for i := uint64(1); i <= k; i++ {
		res = (res * (n + 1 - i)) / i
	}
	return res
}

// Index returns the canonical position of the combination vals within
// the reverse-lexicographic ordering of all C(n, k) combinations, for
// n implied by the values themselves. vals must be in descending order;
// Index sorts a copy if it is not, so callers may pass server indices
// in any order.
//
// Example: for 4 choose 2 the six combinations {3,2} {3,1} {3,0} {2,1}
// {2,0} {1,0} receive indices 5 4 3 2 1 0 respectively.
func Index(vals []uint64) uint64 {
	sorted := append([]uint64(nil), vals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	k := uint64(len(sorted))
	var res uint64
	for i, v := range sorted {
		res += Choose(v, k-uint64(i))
	}
	return res
}
