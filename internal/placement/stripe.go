package placement

import "math/rand"

// partitionSizes implements the size-partitioning half of the striping
// contract shared by every algorithm: stripe_width is the file size
// divided into strip_size-sized pieces, capped at maxStripeWidth; full
// stripes are distributed evenly across every member, and the trailing
// partial stripe is handed out strip_size at a time starting from index
// 0 until the remaining bytes run out.
func partitionSizes(fileSize uint64, maxStripeWidth uint32, stripSize uint64) []uint64 {
	stripeWidth := fileSize/stripSize + 1
	if fileSize%stripSize == 0 {
		stripeWidth--
	}
	if stripeWidth > uint64(maxStripeWidth) {
		stripeWidth = uint64(maxStripeWidth)
	}

	sizeLeft := fileSize
	fullStripes := sizeLeft / (stripeWidth * stripSize)
	sizeLeft -= fullStripes * stripeWidth * stripSize

	sizes := make([]uint64, stripeWidth)
	for i := range sizes {
		sizes[i] = fullStripes * stripSize
		if sizeLeft > 0 {
			if sizeLeft > stripSize {
				sizes[i] += stripSize
				sizeLeft -= stripSize
			} else {
				sizes[i] += sizeLeft
				sizeLeft = 0
			}
		}
	}
	return sizes
}

// createStripedRandom is the generic object-id emitter used by every
// algorithm except multiring: each oid is an independent draw from the
// PRNG, with no guarantee about which server it will place on.
func createStripedRandom(fileSize uint64, maxStripeWidth uint32, stripSize uint64, rng *rand.Rand) ([]uint64, []uint64) {
	sizes := partitionSizes(fileSize, maxStripeWidth, stripSize)
	oids := make([]uint64, len(sizes))
	for i := range oids {
		oids[i] = RandomU64(rng)
	}
	return oids, sizes
}

// RandomU64 builds a 64-bit value by concatenating eight independent
// 8-bit samples from rng, the byte-at-a-time construction the reference
// utility uses so test harnesses can draw deterministic sequences from a
// seeded *rand.Rand.
func RandomU64(rng *rand.Rand) uint64 {
	var v uint64
	for i := uint(0); i < 8; i++ {
		sample := uint64(rng.Intn(256))
		v += sample << (8 * i)
	}
	return v
}
