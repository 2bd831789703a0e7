// Package histogram parses the file-size histogram format consumed by
// the out-of-scope workload generator (spec.md §6) and samples sizes
// from it, and writes the combinatorial-statistics format the
// out-of-scope benchmark driver emits (also §6). Neither format touches
// the placement contract itself; they exist so the interop formats have
// an executable, testable definition even though no CLI in this module
// drives them.
package histogram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"

	"ch-placement/internal/comb"
	"ch-placement/internal/placement"
)

// maxBins is the hard cap on distinct size bins a histogram file may
// declare, mirroring the reference parser's fixed 50-entry array.
const maxBins = 50

// ErrTooManyBins is returned when a histogram file declares more than
// maxBins bins.
var ErrTooManyBins = errors.New("histogram: more than 50 bins")

// ErrMissingTotalCount is returned when a histogram file has no
// "# total_count: N" comment before its first bin line, or has no bin
// lines at all.
var ErrMissingTotalCount = errors.New("histogram: missing \"# total_count:\" comment")

// Bin is a half-open object-size range [Min, Max) with its observed
// count and the running cumulative frequency through this bin.
type Bin struct {
	Min, Max, Count uint64
	CumuFraction    float64
}

// Histogram is a parsed size-frequency table, ready for weighted
// sampling.
type Histogram struct {
	Bins       []Bin
	TotalCount uint64
}

// ParseFile reads the histogram bin format: `#`-prefixed comment lines
// (one of which must match "# total_count: <N>" and come before the
// first bin line; a later match replaces the earlier value), blank lines
// ignored, and all other lines holding three whitespace-separated
// unsigned integers "min max count". Bins must already be in ascending
// order in the file; ParseFile does not re-sort them.
func ParseFile(r io.Reader) (*Histogram, error) {
	h := &Histogram{}
	var running uint64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == '#' {
			var n uint64
			if _, err := fmt.Sscanf(line, "# total_count: %d", &n); err == nil {
				h.TotalCount = n
			}
			continue
		}

		var min, max, count uint64
		if _, err := fmt.Sscanf(line, "%d %d %d", &min, &max, &count); err != nil {
			return nil, fmt.Errorf("histogram: malformed bin line %q: %w", line, err)
		}
		if h.TotalCount == 0 {
			return nil, ErrMissingTotalCount
		}
		running += count
		h.Bins = append(h.Bins, Bin{
			Min:          min,
			Max:          max,
			Count:        count,
			CumuFraction: float64(running) / float64(h.TotalCount),
		})
		if len(h.Bins) > maxBins {
			return nil, ErrTooManyBins
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("histogram: error reading bin file: %v", err)
		return nil, err
	}
	if len(h.Bins) == 0 {
		return nil, ErrMissingTotalCount
	}
	return h, nil
}

// Sample draws a uniform random fraction, locates the bin whose
// cumulative-frequency range contains it (the bsearch step
// oid_gen_hist_stripe/oid_gen_hist_hadoop perform), and returns a size
// drawn uniformly from within that bin's [Min, Max) range. A size that
// would round to zero is promoted to 1, matching the reference
// generator's floor.
func (h *Histogram) Sample(rng *rand.Rand) uint64 {
	target := float64(placement.RandomU64(rng)) / float64(^uint64(0))

	idx := sort.Search(len(h.Bins), func(i int) bool {
		return h.Bins[i].CumuFraction >= target
	})
	if idx == len(h.Bins) {
		idx = len(h.Bins) - 1
	}
	b := h.Bins[idx]

	span := b.Max - b.Min
	var size uint64
	if span > 0 {
		size = b.Min + placement.RandomU64(rng)%span
	} else {
		size = b.Min
	}
	if size == 0 {
		size = 1
	}
	return size
}

// ComboStat accumulates the occurrence count and total byte volume
// observed for one replica-set combination.
type ComboStat struct {
	Count uint64
	Bytes uint64
}

// WriteStats emits the combinatorial-statistics format: a header line
// "<C> <K>" where C = C(nSvrs, replication) is the total number of
// possible replica-set combinations and K is the number of combinations
// that were actually observed (len(stats)), followed by K lines
// "<count> <bytes>" sorted ascending by count.
func WriteStats(w io.Writer, nSvrs, replication uint64, stats map[uint64]ComboStat) error {
	c := comb.Choose(nSvrs, replication)
	if _, err := fmt.Fprintf(w, "%d %d\n", c, len(stats)); err != nil {
		return err
	}

	rows := make([]ComboStat, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Count < rows[j].Count })

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%d %d\n", row.Count, row.Bytes); err != nil {
			return err
		}
	}
	return nil
}

// ComboIndex returns the canonical combination index for a set of
// server indices, the key WriteStats' caller should accumulate ComboStat
// entries under: a thin wrapper over comb.Index so callers outside this
// package never import internal/comb directly just to key their stats
// map.
func ComboIndex(serverIdxs []uint32) uint64 {
	vals := make([]uint64, len(serverIdxs))
	for i, v := range serverIdxs {
		vals[i] = uint64(v)
	}
	return comb.Index(vals)
}
