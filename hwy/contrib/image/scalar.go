package image

import "math"

// ScalarAdjuster is the floating-point reference strategy. Every other
// strategy is tested against it.
type ScalarAdjuster struct{}

// Adjust sets every byte to min(255, round(v*factor)) using the factor
// of its channel. A trailing partial pixel is left alone.
func (ScalarAdjuster) Adjust(pix []uint8, f ChannelFactors) {
	f = f.Clamp()
	scale := [3]float64{float64(f.Red), float64(f.Green), float64(f.Blue)}
	for i := 0; i+2 < len(pix); i += 3 {
		pix[i] = scaleByte(pix[i], scale[0])
		pix[i+1] = scaleByte(pix[i+1], scale[1])
		pix[i+2] = scaleByte(pix[i+2], scale[2])
	}
}

func scaleByte(v uint8, factor float64) uint8 {
	return uint8(min(255, math.Round(float64(v)*factor)))
}
