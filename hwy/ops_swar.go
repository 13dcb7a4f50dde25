package hwy

import "encoding/binary"

// WordOps implements Ops with SIMD-within-a-register arithmetic on
// uint64 words: four 16-bit lanes per word for the halfword steps and
// eight pixels (three words) per step for the structure loads and
// stores. Lanes that do not fill a whole word are handled one at a time.
type WordOps struct{}

var _ Ops = WordOps{}

const (
	halfHighBits = 0x8000_8000_8000_8000
	halfLowMask  = 0xFFFE_FFFE_FFFE_FFFE
	byteLanes    = 0x00FF_00FF_00FF_00FF
	halfPairs    = 0x0000_FFFF_0000_FFFF
)

// Name returns "swar".
func (WordOps) Name() string { return "swar" }

// WidenMultiply multiplies lane by lane into 16-bit results.
func (WordOps) WidenMultiply(a, b Vec[uint8]) Vec[uint16] {
	n := min(len(a.data), len(b.data))
	result := make([]uint16, n)
	for i := range n {
		result[i] = uint16(a.data[i]) * uint16(b.data[i])
	}
	return Vec[uint16]{data: result}
}

// SaturatingDouble shifts four lanes per word and ORs all-ones into every
// lane whose top bit was set, which is exactly where the double overflows.
func (WordOps) SaturatingDouble(v Vec[uint16]) Vec[uint16] {
	n := len(v.data)
	result := make([]uint16, n)
	i := 0
	for ; i+4 <= n; i += 4 {
		w := packHalves(v.data[i:])
		sat := ((w & halfHighBits) >> 15) * 0xFFFF
		unpackHalves((w<<1)&halfLowMask|sat, result[i:])
	}
	for ; i < n; i++ {
		result[i] = saturatedAdd(v.data[i], v.data[i])
	}
	return Vec[uint16]{data: result}
}

// NarrowHighByte gathers the high bytes of four lanes into the low 32
// bits of a word.
func (WordOps) NarrowHighByte(v Vec[uint16]) Vec[uint8] {
	n := len(v.data)
	result := make([]uint8, n)
	i := 0
	for ; i+4 <= n; i += 4 {
		x := (packHalves(v.data[i:]) >> 8) & byteLanes
		x = (x | x>>8) & halfPairs
		x = x | x>>16
		binary.LittleEndian.PutUint32(result[i:], uint32(x))
	}
	for ; i < n; i++ {
		result[i] = uint8(v.data[i] >> 8)
	}
	return Vec[uint8]{data: result}
}

// Deinterleave3 moves eight whole pixels at a time while the mask is
// active for all of them, then finishes lane by lane.
func (WordOps) Deinterleave3(mask Mask[uint8], src []uint8) (Vec[uint8], Vec[uint8], Vec[uint8]) {
	n := len(mask.bits)
	a := make([]uint8, n)
	b := make([]uint8, n)
	c := make([]uint8, n)

	i := 0
	for ; i+8 <= n && 3*(i+8) <= len(src) && (Mask[uint8]{bits: mask.bits[i : i+8]}).AllTrue(); i += 8 {
		var words [3]uint64
		for k := range words {
			words[k] = binary.LittleEndian.Uint64(src[3*i+8*k:])
		}
		binary.LittleEndian.PutUint64(a[i:], gatherChannel(&words, 0))
		binary.LittleEndian.PutUint64(b[i:], gatherChannel(&words, 1))
		binary.LittleEndian.PutUint64(c[i:], gatherChannel(&words, 2))
	}
	for ; i < n && 3*i+2 < len(src); i++ {
		if !mask.bits[i] {
			continue
		}
		a[i] = src[3*i]
		b[i] = src[3*i+1]
		c[i] = src[3*i+2]
	}

	return Vec[uint8]{data: a}, Vec[uint8]{data: b}, Vec[uint8]{data: c}
}

// Interleave3 is the inverse of Deinterleave3.
func (WordOps) Interleave3(mask Mask[uint8], a, b, c Vec[uint8], dst []uint8) {
	n := min(len(mask.bits), min(len(c.data), min(len(b.data), len(a.data))))

	i := 0
	for ; i+8 <= n && 3*(i+8) <= len(dst) && (Mask[uint8]{bits: mask.bits[i : i+8]}).AllTrue(); i += 8 {
		var words [3]uint64
		scatterChannel(&words, 0, binary.LittleEndian.Uint64(a.data[i:]))
		scatterChannel(&words, 1, binary.LittleEndian.Uint64(b.data[i:]))
		scatterChannel(&words, 2, binary.LittleEndian.Uint64(c.data[i:]))
		for k, w := range words {
			binary.LittleEndian.PutUint64(dst[3*i+8*k:], w)
		}
	}
	for ; i < n && 3*i+2 < len(dst); i++ {
		if !mask.bits[i] {
			continue
		}
		dst[3*i] = a.data[i]
		dst[3*i+1] = b.data[i]
		dst[3*i+2] = c.data[i]
	}
}

// gatherChannel collects byte 3*j+channel of the 24-byte block into byte j.
func gatherChannel(words *[3]uint64, channel int) uint64 {
	var out uint64
	for j := range 8 {
		idx := 3*j + channel
		out |= (words[idx/8] >> (8 * (idx % 8)) & 0xFF) << (8 * j)
	}
	return out
}

// scatterChannel places byte j of v at byte 3*j+channel of the block.
func scatterChannel(words *[3]uint64, channel int, v uint64) {
	for j := range 8 {
		idx := 3*j + channel
		words[idx/8] |= (v >> (8 * j) & 0xFF) << (8 * (idx % 8))
	}
}

func packHalves(src []uint16) uint64 {
	return uint64(src[0]) | uint64(src[1])<<16 | uint64(src[2])<<32 | uint64(src[3])<<48
}

func unpackHalves(w uint64, dst []uint16) {
	dst[0] = uint16(w)
	dst[1] = uint16(w >> 16)
	dst[2] = uint16(w >> 32)
	dst[3] = uint16(w >> 48)
}
