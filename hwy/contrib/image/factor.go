package image

import (
	"math"

	"github.com/samber/lo"

	"github.com/ajroetker/go-chanscale/hwy"
)

// FixedPoint is a channel factor in unsigned 2.6 fixed point: the value
// is k/64, so 0 is 0.0, 64 is 1.0 and 128 is 2.0.
type FixedPoint uint8

const (
	// FractionBits is the number of fractional bits in a FixedPoint.
	FractionBits = 6

	// FixedOne is the FixedPoint encoding of 1.0, the identity factor.
	FixedOne FixedPoint = 1 << FractionBits

	// FixedMax is the FixedPoint encoding of MaxFactor.
	FixedMax FixedPoint = 2 * FixedOne

	// MaxFactor is the largest channel factor; larger values are clamped.
	MaxFactor = 2.0
)

// Encode converts a float factor to fixed point: the factor is clamped to
// [0, MaxFactor] and round(factor*64) is returned.
func Encode(factor float32) FixedPoint {
	k := math.Round(float64(ClampFactor(factor)) * float64(FixedOne))
	return FixedPoint(lo.Clamp(k, 0, float64(FixedMax)))
}

// Float returns the factor k represents.
func (k FixedPoint) Float() float32 {
	return float32(k) / float32(FixedOne)
}

// ClampFactor clamps f to [0, MaxFactor]. NaN becomes 0.
func ClampFactor(f float32) float32 {
	if math.IsNaN(float64(f)) {
		return 0
	}
	return lo.Clamp(f, 0, MaxFactor)
}

// ChannelFactors holds one scale factor per channel.
type ChannelFactors struct {
	Red, Green, Blue float32
}

// Identity leaves every channel unchanged.
var Identity = ChannelFactors{Red: 1, Green: 1, Blue: 1}

// Clamp returns f with every factor clamped to [0, MaxFactor].
func (f ChannelFactors) Clamp() ChannelFactors {
	return ChannelFactors{
		Red:   ClampFactor(f.Red),
		Green: ClampFactor(f.Green),
		Blue:  ClampFactor(f.Blue),
	}
}

// Encode returns the fixed-point factors in channel order R, G, B.
func (f ChannelFactors) Encode() [3]FixedPoint {
	return [3]FixedPoint{Encode(f.Red), Encode(f.Green), Encode(f.Blue)}
}

// Quantize snaps every factor to the nearest fixed-point value, which is
// the factor the vector strategies actually apply.
func (f ChannelFactors) Quantize() ChannelFactors {
	k := f.Encode()
	return ChannelFactors{Red: k[0].Float(), Green: k[1].Float(), Blue: k[2].Float()}
}

// scaleLanes multiplies byte lanes by fixed-point factor lanes:
// min(65535, v*k*4) >> 8, which is floor(v*k/64) saturated at 255.
func scaleLanes(ops hwy.Ops, v, k hwy.Vec[uint8]) hwy.Vec[uint8] {
	wide := ops.WidenMultiply(v, k)
	wide = ops.SaturatingDouble(wide)
	wide = ops.SaturatingDouble(wide)
	return ops.NarrowHighByte(wide)
}
