// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package image scales the red, green and blue channels of 8-bit
// interleaved RGB images in place.
//
// Each byte is multiplied by its channel's factor in [0, 2] and saturates
// at 255. Three strategies compute the same transform:
//
//	ScalarAdjuster       float math, one byte at a time; the reference
//	PlanarAdjuster       deinterleaves pixels into R, G and B lanes
//	InterleavedAdjuster  multiplies the raw byte stream by a FactorTable
//
// The vector strategies encode factors as 2.6 fixed point (64 is 1.0) and
// compute each byte as
//
//	min(65535, v*k*4) >> 8
//
// i.e. a widening multiply, two saturating doubles and a narrow to the high
// byte. The doubles turn the divide-by-256 of the narrow into the
// divide-by-64 the encoding needs.
//
// # Usage Example
//
//	pix := img.Pix // len(pix) == width*height*3
//	if err := image.Adjust(pix, width, height, 1.2, 1.0, 0.8); err != nil {
//	    return err
//	}
//
// or with an explicit strategy:
//
//	eng, err := image.NewEngine(image.WithStrategy(image.StrategyPlanar))
//	...
//	err = eng.Adjust(pix, width, height, image.ChannelFactors{Red: 2, Green: 1, Blue: 0.5})
//
// # Configuration
//
// The default strategy comes from HWY_ADJUST_STRATEGY ("scalar", "planar"
// or "interleaved"). When it is unset, the interleaved strategy is used
// unless HWY_NO_SIMD selects the scalar dispatch level. The package-level
// Adjust builds its engine on first use. The lane count
// comes from hwy.MaxLanes[uint8](), which HWY_VECTOR_BYTES can override.
package image
