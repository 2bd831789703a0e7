package chhash

import "encoding/binary"

// scConst is Bob Jenkins' SpookyHash V2 seed constant: nonzero, odd, an
// irregular mix of bits, nothing more special required.
const scConst uint64 = 0xdeadbeefdeadbeef

const spookyBlockSize = 12 * 8 // sc_numVars * 8
const spookyBufSize = 2 * spookyBlockSize

func rot64(x, k uint64) uint64 {
	return (x << k) | (x >> (64 - k))
}

// readWords64 reads n little-endian uint64 words starting at data[0]. The
// original C/Go ports read these via a raw pointer reinterpret cast; we use
// encoding/binary instead so the result does not depend on the host's
// pointer alignment or require unsafe.
func readWords64(data []byte, n int) []uint64 {
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return words
}

func spookyMix(d []uint64, s [12]uint64) [12]uint64 {
	s[0] += d[0]
	s[2] ^= s[10]
	s[11] ^= s[0]
	s[0] = rot64(s[0], 11)
	s[11] += s[1]
	s[1] += d[1]
	s[3] ^= s[11]
	s[0] ^= s[1]
	s[1] = rot64(s[1], 32)
	s[0] += s[2]
	s[2] += d[2]
	s[4] ^= s[0]
	s[1] ^= s[2]
	s[2] = rot64(s[2], 43)
	s[1] += s[3]
	s[3] += d[3]
	s[5] ^= s[1]
	s[2] ^= s[3]
	s[3] = rot64(s[3], 31)
	s[2] += s[4]
	s[4] += d[4]
	s[6] ^= s[2]
	s[3] ^= s[4]
	s[4] = rot64(s[4], 17)
	s[3] += s[5]
	s[5] += d[5]
	s[7] ^= s[3]
	s[4] ^= s[5]
	s[5] = rot64(s[5], 28)
	s[4] += s[6]
	s[6] += d[6]
	s[8] ^= s[4]
	s[5] ^= s[6]
	s[6] = rot64(s[6], 39)
	s[5] += s[7]
	s[7] += d[7]
	s[9] ^= s[5]
	s[6] ^= s[7]
	s[7] = rot64(s[7], 57)
	s[6] += s[8]
	s[8] += d[8]
	s[10] ^= s[6]
	s[7] ^= s[8]
	s[8] = rot64(s[8], 55)
	s[7] += s[9]
	s[9] += d[9]
	s[11] ^= s[7]
	s[8] ^= s[9]
	s[9] = rot64(s[9], 54)
	s[8] += s[10]
	s[10] += d[10]
	s[0] ^= s[8]
	s[9] ^= s[10]
	s[10] = rot64(s[10], 22)
	s[9] += s[11]
	s[11] += d[11]
	s[1] ^= s[9]
	s[10] ^= s[11]
	s[11] = rot64(s[11], 46)
	s[10] += s[0]
	return s
}

func spookyEndPartial(h [12]uint64) [12]uint64 {
	h[11] += h[1]
	h[2] ^= h[11]
	h[1] = rot64(h[1], 44)
	h[0] += h[2]
	h[3] ^= h[0]
	h[2] = rot64(h[2], 15)
	h[1] += h[3]
	h[4] ^= h[1]
	h[3] = rot64(h[3], 34)
	h[2] += h[4]
	h[5] ^= h[2]
	h[4] = rot64(h[4], 21)
	h[3] += h[5]
	h[6] ^= h[3]
	h[5] = rot64(h[5], 38)
	h[4] += h[6]
	h[7] ^= h[4]
	h[6] = rot64(h[6], 33)
	h[5] += h[7]
	h[8] ^= h[5]
	h[7] = rot64(h[7], 10)
	h[6] += h[8]
	h[9] ^= h[6]
	h[8] = rot64(h[8], 13)
	h[7] += h[9]
	h[10] ^= h[7]
	h[9] = rot64(h[9], 38)
	h[8] += h[10]
	h[11] ^= h[8]
	h[10] = rot64(h[10], 53)
	h[9] += h[11]
	h[0] ^= h[9]
	h[11] = rot64(h[11], 42)
	h[10] += h[0]
	h[1] ^= h[10]
	h[0] = rot64(h[0], 54)
	return h
}

func spookyEnd(d []uint64, h [12]uint64) [12]uint64 {
	for i := 0; i < 12; i++ {
		h[i] += d[i]
	}
	h = spookyEndPartial(h)
	h = spookyEndPartial(h)
	h = spookyEndPartial(h)
	return h
}

func spookyShortMix(h [4]uint64) [4]uint64 {
	h[2] = rot64(h[2], 50)
	h[2] += h[3]
	h[0] ^= h[2]
	h[3] = rot64(h[3], 52)
	h[3] += h[0]
	h[1] ^= h[3]
	h[0] = rot64(h[0], 30)
	h[0] += h[1]
	h[2] ^= h[0]
	h[1] = rot64(h[1], 41)
	h[1] += h[2]
	h[3] ^= h[1]
	h[2] = rot64(h[2], 54)
	h[2] += h[3]
	h[0] ^= h[2]
	h[3] = rot64(h[3], 48)
	h[3] += h[0]
	h[1] ^= h[3]
	h[0] = rot64(h[0], 38)
	h[0] += h[1]
	h[2] ^= h[0]
	h[1] = rot64(h[1], 37)
	h[1] += h[2]
	h[3] ^= h[1]
	h[2] = rot64(h[2], 62)
	h[2] += h[3]
	h[0] ^= h[2]
	h[3] = rot64(h[3], 34)
	h[3] += h[0]
	h[1] ^= h[3]
	h[0] = rot64(h[0], 5)
	h[0] += h[1]
	h[2] ^= h[0]
	h[1] = rot64(h[1], 36)
	h[1] += h[2]
	h[3] ^= h[1]
	return h
}

func spookyShortEnd(h [4]uint64) [4]uint64 {
	h[3] ^= h[2]
	h[2] = rot64(h[2], 15)
	h[3] += h[2]
	h[0] ^= h[3]
	h[3] = rot64(h[3], 52)
	h[0] += h[3]
	h[1] ^= h[0]
	h[0] = rot64(h[0], 26)
	h[1] += h[0]
	h[2] ^= h[1]
	h[1] = rot64(h[1], 51)
	h[2] += h[1]
	h[3] ^= h[2]
	h[2] = rot64(h[2], 28)
	h[3] += h[2]
	h[0] ^= h[3]
	h[3] = rot64(h[3], 9)
	h[0] += h[3]
	h[1] ^= h[0]
	h[0] = rot64(h[0], 47)
	h[1] += h[0]
	h[2] ^= h[1]
	h[1] = rot64(h[1], 54)
	h[2] += h[1]
	h[3] ^= h[2]
	h[2] = rot64(h[2], 32)
	h[3] += h[2]
	h[0] ^= h[3]
	h[3] = rot64(h[3], 25)
	h[0] += h[3]
	h[1] ^= h[0]
	h[0] = rot64(h[0], 63)
	h[1] += h[0]
	return h
}

// spookyShort handles messages shorter than spookyBufSize (192 bytes).
func spookyShort(in []byte, hash1, hash2 uint64) (uint64, uint64) {
	h := [4]uint64{hash1, hash2, scConst, scConst}
	length := len(in)
	remainder := length % 32

	if length >= 16 {
		for l := length; l >= 32; l -= 32 {
			h[2] += binary.LittleEndian.Uint64(in)
			in = in[8:]
			h[3] += binary.LittleEndian.Uint64(in)
			in = in[8:]
			h = spookyShortMix(h)
			h[0] += binary.LittleEndian.Uint64(in)
			in = in[8:]
			h[1] += binary.LittleEndian.Uint64(in)
			in = in[8:]
		}
		if remainder >= 16 {
			h[2] += binary.LittleEndian.Uint64(in)
			in = in[8:]
			h[3] += binary.LittleEndian.Uint64(in)
			in = in[8:]
			h = spookyShortMix(h)
			remainder -= 16
		}
	}

	h[3] += uint64(length) << 56

	switch remainder {
	case 15:
		h[3] += uint64(in[14]) << 48
		fallthrough
	case 14:
		h[3] += uint64(in[13]) << 40
		fallthrough
	case 13:
		h[3] += uint64(in[12]) << 32
		fallthrough
	case 12:
		h[3] += uint64(binary.LittleEndian.Uint32(in[8:12]))
		h[2] += binary.LittleEndian.Uint64(in)
	case 11:
		h[3] += uint64(in[10]) << 16
		fallthrough
	case 10:
		h[3] += uint64(in[9]) << 8
		fallthrough
	case 9:
		h[3] += uint64(in[8])
		fallthrough
	case 8:
		h[2] += binary.LittleEndian.Uint64(in)
	case 7:
		h[2] += uint64(in[6]) << 48
		fallthrough
	case 6:
		h[2] += uint64(in[5]) << 40
		fallthrough
	case 5:
		h[2] += uint64(in[4]) << 32
		fallthrough
	case 4:
		h[2] += uint64(binary.LittleEndian.Uint32(in[0:4]))
	case 3:
		h[2] += uint64(in[2]) << 16
		fallthrough
	case 2:
		h[2] += uint64(in[1]) << 8
		fallthrough
	case 1:
		h[2] += uint64(in[0])
	case 0:
		h[2] += scConst
		h[3] += scConst
	}

	h = spookyShortEnd(h)
	return h[0], h[1]
}

// spooky128 produces SpookyHash V2's full 128-bit output as two uint64s.
func spooky128(in []byte, hash1, hash2 uint64) (uint64, uint64) {
	length := len(in)
	if length < spookyBufSize {
		return spookyShort(in, hash1, hash2)
	}

	s := [12]uint64{
		hash1, hash2, scConst, hash1,
		hash2, scConst, hash1, hash2,
		scConst, hash1, hash2, scConst,
	}

	remainder := length % spookyBlockSize
	for l := length; l >= spookyBlockSize; l -= spookyBlockSize {
		s = spookyMix(readWords64(in, 12), s)
		in = in[spookyBlockSize:]
	}

	var tail [spookyBlockSize]byte
	copy(tail[:], in)
	tail[len(tail)-1] = byte(remainder)
	s = spookyEnd(readWords64(tail[:], 12), s)

	return s[0], s[1]
}

// SpookyHash64 computes SpookyHash V2's 64-bit output for message, seeded
// by duplicating seed into both halves of the 128-bit state, matching the
// reference Hash64 entry point.
func SpookyHash64(message []byte, seed uint64) uint64 {
	h1, _ := spooky128(message, seed, seed)
	return h1
}
