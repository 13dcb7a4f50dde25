package hwy

// PromoteU8ToU16 widens uint8 to uint16 (zero-extended).
func PromoteU8ToU16(v Vec[uint8]) Vec[uint16] {
	result := make([]uint16, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = uint16(v.data[i])
	}
	return Vec[uint16]{data: result}
}

// TruncateU16ToU8 narrows uint16 to uint8 by keeping the low byte
// (no saturation). Pair it with ShiftRight to keep the high byte instead.
func TruncateU16ToU8(v Vec[uint16]) Vec[uint8] {
	result := make([]uint8, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = uint8(v.data[i])
	}
	return Vec[uint8]{data: result}
}
