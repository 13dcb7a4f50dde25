package image

import (
	"fmt"

	"github.com/ajroetker/go-chanscale/hwy"
)

// PlanarAdjuster processes lanes pixels per batch. Each batch is split
// into red, green and blue lane groups, every group is scaled by its own
// broadcast factor, and the results are interleaved back. The last batch
// runs under a tail mask, so memory past the image is never touched.
type PlanarAdjuster struct {
	ops   hwy.Ops
	lanes int
}

// NewPlanarAdjuster returns a planar strategy over lanes pixels per batch.
func NewPlanarAdjuster(ops hwy.Ops, lanes int) (*PlanarAdjuster, error) {
	if lanes < 1 {
		return nil, fmt.Errorf("%w: planar needs at least 1 lane, got %d", ErrLanes, lanes)
	}
	return &PlanarAdjuster{ops: ops, lanes: lanes}, nil
}

// Lanes returns the number of pixels per batch.
func (a *PlanarAdjuster) Lanes() int {
	return a.lanes
}

// Adjust scales pix in place. A trailing partial pixel is left alone.
func (a *PlanarAdjuster) Adjust(pix []uint8, f ChannelFactors) {
	lanes := a.lanes
	k := f.Encode()
	kr := hwy.SetN(uint8(k[0]), lanes)
	kg := hwy.SetN(uint8(k[1]), lanes)
	kb := hwy.SetN(uint8(k[2]), lanes)

	hwy.ProcessBatches(len(pix)/3, lanes, lanes, func(offset, active int) {
		mask := hwy.TailMask[uint8](lanes, active)
		block := pix[3*offset:]
		r, g, b := a.ops.Deinterleave3(mask, block)
		a.ops.Interleave3(mask,
			scaleLanes(a.ops, r, kr),
			scaleLanes(a.ops, g, kg),
			scaleLanes(a.ops, b, kb),
			block)
	})
}
