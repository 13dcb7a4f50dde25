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

package hwy

// Ops is the closed set of batch primitives a fixed-point channel kernel
// is written against. Each method mirrors one step of the SVE2 sequence
// (UMULLB/UMULLT, UQADD, ADDHNB/ADDHNT, LD3B, ST3B) without committing to
// any instruction set.
//
// All implementations must produce identical lanes for identical inputs.
type Ops interface {
	// Name identifies the implementation, e.g. "scalar" or "swar".
	Name() string

	// WidenMultiply returns a[i]*b[i] as 16-bit lanes. The product of two
	// bytes always fits.
	WidenMultiply(a, b Vec[uint8]) Vec[uint16]

	// SaturatingDouble returns v[i]+v[i], clamped to 65535.
	SaturatingDouble(v Vec[uint16]) Vec[uint16]

	// NarrowHighByte returns the upper 8 bits of each lane.
	NarrowHighByte(v Vec[uint16]) Vec[uint8]

	// Deinterleave3 splits the triples under active lanes of mask into
	// three vectors of mask.NumLanes() lanes. Inactive lanes are zero.
	Deinterleave3(mask Mask[uint8], src []uint8) (a, b, c Vec[uint8])

	// Interleave3 writes the active lanes of a, b and c back as triples.
	// Memory under inactive lanes is not touched.
	Interleave3(mask Mask[uint8], a, b, c Vec[uint8], dst []uint8)
}

// ScalarOps is the per-lane reference implementation of Ops, composed
// from the generic lane operations of this package.
type ScalarOps struct{}

var _ Ops = ScalarOps{}

// Name returns "scalar".
func (ScalarOps) Name() string { return "scalar" }

// WidenMultiply promotes both operands to 16 bits and multiplies.
func (ScalarOps) WidenMultiply(a, b Vec[uint8]) Vec[uint16] {
	return Mul(PromoteU8ToU16(a), PromoteU8ToU16(b))
}

// SaturatingDouble adds v to itself with saturation.
func (ScalarOps) SaturatingDouble(v Vec[uint16]) Vec[uint16] {
	return SaturatedAdd(v, v)
}

// NarrowHighByte shifts the high byte down and truncates.
func (ScalarOps) NarrowHighByte(v Vec[uint16]) Vec[uint8] {
	return TruncateU16ToU8(ShiftRight(v, 8))
}

// Deinterleave3 is MaskLoadInterleaved3 on bytes.
func (ScalarOps) Deinterleave3(mask Mask[uint8], src []uint8) (Vec[uint8], Vec[uint8], Vec[uint8]) {
	return MaskLoadInterleaved3(mask, src)
}

// Interleave3 is MaskStoreInterleaved3 on bytes.
func (ScalarOps) Interleave3(mask Mask[uint8], a, b, c Vec[uint8], dst []uint8) {
	MaskStoreInterleaved3(mask, a, b, c, dst)
}

// OpsFor returns the Ops implementation used for a dispatch level.
// Every vector level runs the word-parallel implementation; the scalar
// level runs ScalarOps.
func OpsFor(level DispatchLevel) Ops {
	if level == DispatchScalar {
		return ScalarOps{}
	}
	return WordOps{}
}

// CurrentOps returns the Ops implementation for the current dispatch level.
func CurrentOps() Ops {
	return OpsFor(currentLevel)
}
