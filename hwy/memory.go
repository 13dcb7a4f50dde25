package hwy

// This file provides structure loads and stores for interleaved data.
// These are pure Go (scalar) implementations that work with any lane type.

// MaskLoadInterleaved3 loads interleaved triples and deinterleaves them
// into three vectors, one lane per triple. This converts
// Array-of-Structures (AoS) format to Structure-of-Arrays (SoA), like
// SVE's LD3B.
//
// Input memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, ...]
//	vec_b = [b0, b1, b2, ...]
//	vec_c = [c0, c1, c2, ...]
//
// Each vector has mask.NumLanes() lanes. Lanes that are inactive, or
// whose triple is not complete in src, are zero.
func MaskLoadInterleaved3[T Lanes](mask Mask[T], src []T) (Vec[T], Vec[T], Vec[T]) {
	n := len(mask.bits)
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)

	for i := 0; i < n && 3*i+2 < len(src); i++ {
		if !mask.bits[i] {
			continue
		}
		a[i] = src[3*i]
		b[i] = src[3*i+1]
		c[i] = src[3*i+2]
	}

	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}
}

// MaskStoreInterleaved3 stores three vectors interleaved to dst.
// This converts Structure-of-Arrays (SoA) format to Array-of-Structures
// (AoS), like SVE's ST3B, and is the inverse of MaskLoadInterleaved3.
//
// Input vectors:
//
//	vec_a = [a0, a1, a2, ...]
//	vec_b = [b0, b1, b2, ...]
//	vec_c = [c0, c1, c2, ...]
//
// Output memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// Only triples under active lanes are written; the rest of dst is left
// untouched.
func MaskStoreInterleaved3[T Lanes](mask Mask[T], a, b, c Vec[T], dst []T) {
	n := min(len(mask.bits), min(len(c.data), min(len(b.data), len(a.data))))

	for i := 0; i < n && 3*i+2 < len(dst); i++ {
		if !mask.bits[i] {
			continue
		}
		dst[3*i] = a.data[i]
		dst[3*i+1] = b.data[i]
		dst[3*i+2] = c.data[i]
	}
}
