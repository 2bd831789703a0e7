// Package chhash implements the two fixed hash primitives the placement
// algorithms are built on: Bob Jenkins' lookup3 (hashlittle2 variant) and
// SpookyHash V2's 64-bit output. Both are pinned bit-exactly by the
// library's contract, so nothing in this package may vary by platform.
package chhash

// rot rotates x left by k bits within a 32-bit word.
func rot(x uint32, k uint) uint32 {
	return (x << k) | (x >> (32 - k))
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b
	b -= a
	b ^= rot(a, 6)
	a += c
	c -= b
	c ^= rot(b, 8)
	b += a
	a -= c
	a ^= rot(c, 16)
	c += b
	b -= a
	b ^= rot(a, 19)
	a += c
	c -= b
	c ^= rot(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return a, b, c
}

// HashLittle2 is the canonical public-domain lookup3 two-output mix,
// always operating byte-at-a-time in little-endian order regardless of
// host architecture. This is what the spec calls the "native
// little-endian encoding" contract: running this function on a
// big-endian host produces the same result as on a little-endian one,
// because the byte feeding is explicit rather than derived from pointer
// alignment.
//
// h1/h2 are the in/out seed-then-hash accumulators (pc/pb in the
// original C naming).
func HashLittle2(key []byte, h1, h2 uint32) (uint32, uint32) {
	a := uint32(0xdeadbeef) + uint32(len(key)) + h1
	b := a
	c := a
	c += h2

	k := key
	length := len(k)
	for length > 12 {
		a += uint32(k[0])
		a += uint32(k[1]) << 8
		a += uint32(k[2]) << 16
		a += uint32(k[3]) << 24
		b += uint32(k[4])
		b += uint32(k[5]) << 8
		b += uint32(k[6]) << 16
		b += uint32(k[7]) << 24
		c += uint32(k[8])
		c += uint32(k[9]) << 8
		c += uint32(k[10]) << 16
		c += uint32(k[11]) << 24
		a, b, c = mix(a, b, c)
		length -= 12
		k = k[12:]
	}

	switch length {
	case 12:
		c += uint32(k[11]) << 24
		fallthrough
	case 11:
		c += uint32(k[10]) << 16
		fallthrough
	case 10:
		c += uint32(k[9]) << 8
		fallthrough
	case 9:
		c += uint32(k[8])
		fallthrough
	case 8:
		b += uint32(k[7]) << 24
		fallthrough
	case 7:
		b += uint32(k[6]) << 16
		fallthrough
	case 6:
		b += uint32(k[5]) << 8
		fallthrough
	case 5:
		b += uint32(k[4])
		fallthrough
	case 4:
		a += uint32(k[3]) << 24
		fallthrough
	case 3:
		a += uint32(k[2]) << 16
		fallthrough
	case 2:
		a += uint32(k[1]) << 8
		fallthrough
	case 1:
		a += uint32(k[0])
	case 0:
		return c, b
	}

	a, b, c = final(a, b, c)
	return c, b
}

// Uint64LE encodes v as its 8 little-endian bytes, the fixed byte-feeding
// convention §4.2 of the contract requires when hashing a server index.
func Uint64LE(v uint64) [8]byte {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * uint(i)))
	}
	return buf
}
