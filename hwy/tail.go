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

// TailMask creates a mask of 'lanes' lanes with the first 'count' lanes
// active. It plays the role of SVE's WHILELO: inside a batch loop it is
// all-true until the final batch, where it shrinks to the number of
// elements that remain.
//
// Example:
//
//	lanes := hwy.MaxLanes[uint8]()
//	hwy.ProcessBatches(len(data), lanes, lanes, func(offset, active int) {
//	    mask := hwy.TailMask[uint8](lanes, active)
//	    v := hwy.MaskLoad(mask, data[offset:])
//	    // ... process v
//	    hwy.MaskStore(mask, v, data[offset:])
//	})
func TailMask[T Lanes](lanes, count int) Mask[T] {
	if lanes < 0 {
		lanes = 0
	}
	count = min(max(count, 0), lanes)

	bits := make([]bool, lanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessBatches walks size elements in batches of up to lanes elements,
// calling fn(offset, active) for each batch. Batches start at
// 0, stride, 2*stride, ... for as long as the start is inside the data,
// and active is min(lanes, size-offset), so only the last batch can be
// partial.
//
// With stride == lanes the batches tile the data. A stride smaller than
// lanes makes consecutive batches overlap by lanes-stride elements; the
// caller is then responsible for leaving the overlapping lanes unchanged
// in the earlier batch.
//
// ProcessBatches panics if stride is not positive.
func ProcessBatches(size, stride, lanes int, fn func(offset, active int)) {
	if stride <= 0 {
		panic("hwy: ProcessBatches stride must be positive")
	}
	for offset := 0; offset < size; offset += stride {
		fn(offset, min(lanes, size-offset))
	}
}

// AlignedStride returns the largest multiple of group that fits in
// lanes, i.e. how far a batch loop can advance while every batch starts
// on a group boundary. It returns 0 when lanes < group.
func AlignedStride(lanes, group int) int {
	if group <= 0 {
		return 0
	}
	return (lanes / group) * group
}
