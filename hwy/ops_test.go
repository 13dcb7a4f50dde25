package hwy

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadN(t *testing.T) {
	v := LoadN([]uint8{1, 2, 3}, 5)
	if diff := cmp.Diff([]uint8{1, 2, 3, 0, 0}, v.Data()); diff != "" {
		t.Errorf("LoadN mismatch (-want +got):\n%s", diff)
	}

	v = LoadN([]uint8{1, 2, 3, 4, 5, 6}, 4)
	if diff := cmp.Diff([]uint8{1, 2, 3, 4}, v.Data()); diff != "" {
		t.Errorf("LoadN truncation mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadUsesCurrentWidth(t *testing.T) {
	v := Load([]uint8{9})
	if v.NumLanes() != MaxLanes[uint8]() {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[uint8]())
	}
	if v.Data()[0] != 9 {
		t.Errorf("Load: lane 0: got %d, want 9", v.Data()[0])
	}
}

func TestSet(t *testing.T) {
	v := Set[uint8](3)
	if v.NumLanes() != MaxLanes[uint8]() || v.Data()[v.NumLanes()-1] != 3 {
		t.Errorf("Set: got %v", v.Data())
	}
}

func TestSetN(t *testing.T) {
	v := SetN[uint16](300, 7)
	if v.NumLanes() != 7 {
		t.Fatalf("SetN: got %d lanes, want 7", v.NumLanes())
	}
	for i, got := range v.Data() {
		if got != 300 {
			t.Errorf("SetN: lane %d: got %d, want 300", i, got)
		}
	}
}

func TestStore(t *testing.T) {
	dst := []uint8{0, 0}
	LoadN([]uint8{4, 5, 6}, 3).Store(dst)
	if diff := cmp.Diff([]uint8{4, 5}, dst); diff != "" {
		t.Errorf("Store mismatch (-want +got):\n%s", diff)
	}
}

func TestMulShiftRight(t *testing.T) {
	a := LoadN([]uint16{255, 100, 7}, 3)
	b := LoadN([]uint16{128, 64, 1}, 3)
	got := ShiftRight(Mul(a, b), 6).Data()
	want := []uint16{510, 100, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mul/ShiftRight mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskLoadStore(t *testing.T) {
	src := []uint8{1, 2, 3}
	mask := TailMask[uint8](6, 2)
	v := MaskLoad(mask, src)
	if diff := cmp.Diff([]uint8{1, 2, 0, 0, 0, 0}, v.Data()); diff != "" {
		t.Errorf("MaskLoad mismatch (-want +got):\n%s", diff)
	}

	dst := []uint8{9, 9, 9, 9}
	MaskStore(mask, SetN[uint8](7, 6), dst)
	if diff := cmp.Diff([]uint8{7, 7, 9, 9}, dst); diff != "" {
		t.Errorf("MaskStore mismatch (-want +got):\n%s", diff)
	}
}

func TestOpsKnownValues(t *testing.T) {
	for _, ops := range []Ops{ScalarOps{}, WordOps{}} {
		t.Run(ops.Name(), func(t *testing.T) {
			data := LoadN([]uint8{10, 100, 255, 255, 0, 128, 200}, 7)
			factor := LoadN([]uint8{128, 64, 64, 128, 128, 32, 0}, 7)

			wide := ops.WidenMultiply(data, factor)
			if diff := cmp.Diff([]uint16{1280, 6400, 16320, 32640, 0, 4096, 0}, wide.Data()); diff != "" {
				t.Errorf("WidenMultiply mismatch (-want +got):\n%s", diff)
			}

			wide = ops.SaturatingDouble(ops.SaturatingDouble(wide))
			if diff := cmp.Diff([]uint16{5120, 25600, 65280, 65535, 0, 16384, 0}, wide.Data()); diff != "" {
				t.Errorf("SaturatingDouble mismatch (-want +got):\n%s", diff)
			}

			got := ops.NarrowHighByte(wide)
			if diff := cmp.Diff([]uint8{20, 100, 255, 255, 0, 64, 0}, got.Data()); diff != "" {
				t.Errorf("NarrowHighByte mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpsSaturatingDoubleBoundary(t *testing.T) {
	in := []uint16{0x7FFF, 0x8000, 0xFFFF, 0x0001, 0x4000, 0xC000, 0x7FFE, 0}
	want := []uint16{0xFFFE, 0xFFFF, 0xFFFF, 0x0002, 0x8000, 0xFFFF, 0xFFFC, 0}
	for _, ops := range []Ops{ScalarOps{}, WordOps{}} {
		got := ops.SaturatingDouble(LoadN(in, len(in))).Data()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: SaturatingDouble mismatch (-want +got):\n%s", ops.Name(), diff)
		}
	}
}

func TestOpsDeinterleaveInterleave(t *testing.T) {
	for _, ops := range []Ops{ScalarOps{}, WordOps{}} {
		t.Run(ops.Name(), func(t *testing.T) {
			src := make([]uint8, 30)
			for i := range src {
				src[i] = uint8(i)
			}
			mask := TailMask[uint8](16, 10)
			r, g, b := ops.Deinterleave3(mask, src)

			wantR := []uint8{0, 3, 6, 9, 12, 15, 18, 21, 24, 27, 0, 0, 0, 0, 0, 0}
			wantG := []uint8{1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 0, 0, 0, 0, 0, 0}
			wantB := []uint8{2, 5, 8, 11, 14, 17, 20, 23, 26, 29, 0, 0, 0, 0, 0, 0}
			if diff := cmp.Diff(wantR, r.Data()); diff != "" {
				t.Errorf("red mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantG, g.Data()); diff != "" {
				t.Errorf("green mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantB, b.Data()); diff != "" {
				t.Errorf("blue mismatch (-want +got):\n%s", diff)
			}

			dst := make([]uint8, 33)
			for i := range dst {
				dst[i] = 0xEE
			}
			ops.Interleave3(mask, r, g, b, dst)
			if diff := cmp.Diff(src, dst[:30]); diff != "" {
				t.Errorf("Interleave3 round trip mismatch (-want +got):\n%s", diff)
			}
			for i := 30; i < len(dst); i++ {
				if dst[i] != 0xEE {
					t.Errorf("Interleave3 wrote past active lanes at %d: %d", i, dst[i])
				}
			}
		})
	}
}

// WordOps must agree with ScalarOps lane for lane, whatever the width.
func TestWordOpsMatchScalarOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scalar, word := ScalarOps{}, WordOps{}

	for _, lanes := range []int{1, 3, 4, 5, 7, 8, 9, 16, 17, 21, 24, 32, 48, 64, 65} {
		for _, active := range []int{0, 1, lanes / 2, lanes - 1, lanes} {
			t.Run(fmt.Sprintf("lanes=%d/active=%d", lanes, active), func(t *testing.T) {
				a := make([]uint8, lanes)
				b := make([]uint8, lanes)
				h := make([]uint16, lanes)
				for i := range lanes {
					a[i] = uint8(rng.Intn(256))
					b[i] = uint8(rng.Intn(129))
					h[i] = uint16(rng.Intn(65536))
				}
				va, vb, vh := LoadN(a, lanes), LoadN(b, lanes), LoadN(h, lanes)

				if diff := cmp.Diff(scalar.WidenMultiply(va, vb).Data(), word.WidenMultiply(va, vb).Data()); diff != "" {
					t.Errorf("WidenMultiply (-scalar +word):\n%s", diff)
				}
				if diff := cmp.Diff(scalar.SaturatingDouble(vh).Data(), word.SaturatingDouble(vh).Data()); diff != "" {
					t.Errorf("SaturatingDouble (-scalar +word):\n%s", diff)
				}
				if diff := cmp.Diff(scalar.NarrowHighByte(vh).Data(), word.NarrowHighByte(vh).Data()); diff != "" {
					t.Errorf("NarrowHighByte (-scalar +word):\n%s", diff)
				}

				src := make([]uint8, 3*active)
				for i := range src {
					src[i] = uint8(rng.Intn(256))
				}
				mask := TailMask[uint8](lanes, active)
				sr, sg, sb := scalar.Deinterleave3(mask, src)
				wr, wg, wb := word.Deinterleave3(mask, src)
				if diff := cmp.Diff(
					[][]uint8{sr.Data(), sg.Data(), sb.Data()},
					[][]uint8{wr.Data(), wg.Data(), wb.Data()},
				); diff != "" {
					t.Errorf("Deinterleave3 (-scalar +word):\n%s", diff)
				}

				sdst := make([]uint8, 3*lanes+2)
				wdst := make([]uint8, 3*lanes+2)
				for i := range sdst {
					sdst[i] = uint8(i)
					wdst[i] = uint8(i)
				}
				scalar.Interleave3(mask, va, vb, va, sdst)
				word.Interleave3(mask, va, vb, va, wdst)
				if diff := cmp.Diff(sdst, wdst); diff != "" {
					t.Errorf("Interleave3 (-scalar +word):\n%s", diff)
				}
			})
		}
	}
}

func TestOpsFor(t *testing.T) {
	if _, ok := OpsFor(DispatchScalar).(ScalarOps); !ok {
		t.Errorf("OpsFor(scalar) = %T, want ScalarOps", OpsFor(DispatchScalar))
	}
	for _, level := range []DispatchLevel{DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON, DispatchSVE} {
		if _, ok := OpsFor(level).(WordOps); !ok {
			t.Errorf("OpsFor(%v) = %T, want WordOps", level, OpsFor(level))
		}
	}
	if CurrentOps() == nil {
		t.Error("CurrentOps returned nil")
	}
}

func BenchmarkOps(b *testing.B) {
	lanes := MaxLanes[uint8]()
	src := make([]uint8, 3*lanes)
	for i := range src {
		src[i] = uint8(i)
	}
	factor := SetN[uint8](96, lanes)
	mask := TailMask[uint8](lanes, lanes)

	for _, ops := range []Ops{ScalarOps{}, WordOps{}} {
		b.Run(ops.Name(), func(b *testing.B) {
			b.SetBytes(int64(len(src)))
			for range b.N {
				r, g, bl := ops.Deinterleave3(mask, src)
				r = ops.NarrowHighByte(ops.SaturatingDouble(ops.SaturatingDouble(ops.WidenMultiply(r, factor))))
				ops.Interleave3(mask, r, g, bl, src)
			}
		})
	}
}
