// Package hwy provides portable byte-lane vector operations with runtime
// CPU dispatch.
//
// It follows the Highway C++ library's design: code is written once
// against Vec and Mask, and the lane width comes from the running CPU
// (16 bytes for SSE2/NEON, 32 for AVX2, 64 for AVX-512, and whatever the
// kernel reports for SVE). The arithmetic a channel-scaling kernel needs
// is exposed as the closed Ops set, with a per-lane scalar implementation
// and a word-parallel one that produce identical bytes.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-chanscale/hwy"
//
//	lanes := hwy.MaxLanes[uint8]()
//	ops := hwy.CurrentOps()
//	hwy.ProcessBatches(len(data), lanes, lanes, func(offset, active int) {
//	    mask := hwy.TailMask[uint8](lanes, active)
//	    v := hwy.MaskLoad(mask, data[offset:])
//	    wide := ops.WidenMultiply(v, factors)
//	    hwy.MaskStore(mask, ops.NarrowHighByte(wide), data[offset:])
//	})
package hwy

// Lanes is a constraint for the lane types the channel kernels use:
// bytes for pixel data and halfwords for widened intermediates.
type Lanes interface {
	~uint8 | ~uint16
}

// Vec is a portable vector handle. It wraps a slice of lanes; the number
// of lanes is fixed when the vector is created.
//
// Vec instances should not be created directly; use Load, LoadN, Set or
// SetN instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask is a per-lane predicate. Active lanes take part in masked loads
// and stores; inactive lanes are loaded as zero and never written back.
//
// Masks are normally created with TailMask.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}
