package image

import (
	"fmt"

	"github.com/ajroetker/go-chanscale/hwy"
)

// FactorTable holds one fixed-point factor per byte lane. The first
// hwy.AlignedStride(len, 3) entries repeat the R, G, B factors; the
// remaining entries are FixedOne, so the bytes of a pixel that straddles
// the end of a vector are written back unchanged.
type FactorTable []uint8

// NewFactorTable builds the table for a vector of lanes bytes.
func NewFactorTable(lanes int, f ChannelFactors) FactorTable {
	k := f.Encode()
	stride := hwy.AlignedStride(lanes, 3)
	t := make(FactorTable, lanes)
	for i := range stride {
		t[i] = uint8(k[i%3])
	}
	for i := stride; i < lanes; i++ {
		t[i] = uint8(FixedOne)
	}
	return t
}

// InterleavedAdjuster multiplies the interleaved byte stream directly by
// a FactorTable, without separating channels.
//
// Because lanes is generally not a multiple of 3, batches advance by
// hwy.AlignedStride(lanes, 3) bytes instead of lanes. Every batch then
// starts on a pixel boundary and stays in phase with the table, and the
// straddling bytes at the end of one batch, scaled by 1.0 there, are
// scaled for real at the start of the next.
type InterleavedAdjuster struct {
	ops   hwy.Ops
	lanes int
}

// NewInterleavedAdjuster returns an interleaved strategy over vectors of
// lanes bytes. At least 3 lanes are needed to hold one pixel.
func NewInterleavedAdjuster(ops hwy.Ops, lanes int) (*InterleavedAdjuster, error) {
	if lanes < 3 {
		return nil, fmt.Errorf("%w: interleaved needs at least 3 lanes, got %d", ErrLanes, lanes)
	}
	return &InterleavedAdjuster{ops: ops, lanes: lanes}, nil
}

// Lanes returns the vector width in bytes.
func (a *InterleavedAdjuster) Lanes() int {
	return a.lanes
}

// Stride returns how many bytes each batch advances.
func (a *InterleavedAdjuster) Stride() int {
	return hwy.AlignedStride(a.lanes, 3)
}

// Adjust scales pix in place. A trailing partial pixel is left alone.
func (a *InterleavedAdjuster) Adjust(pix []uint8, f ChannelFactors) {
	lanes := a.lanes
	table := hwy.LoadN(NewFactorTable(lanes, f), lanes)
	size := len(pix) - len(pix)%3

	hwy.ProcessBatches(size, a.Stride(), lanes, func(offset, active int) {
		mask := hwy.TailMask[uint8](lanes, active)
		v := hwy.MaskLoad(mask, pix[offset:size])
		hwy.MaskStore(mask, scaleLanes(a.ops, v, table), pix[offset:size])
	})
}
