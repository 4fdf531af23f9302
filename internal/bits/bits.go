package bits

const (
	// MaxFields is the maximum number of fields a packed value may hold.
	MaxFields = 8

	// MaxTotalBits is the register width every packed value must fit in.
	MaxTotalBits = 64

	// SlotBits is the width of one descriptor slot. A descriptor records
	// each field's bit width in an 8-bit slot, first pushed field in the
	// lowest slot.
	SlotBits = 8

	slotMask = 0xFF
)

// Mask returns a mask covering the low w bits. Widths of 64 or more
// saturate to all ones rather than wrapping.
func Mask(w uint) uint64 {
	if w >= MaxTotalBits {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

// Fits reports whether v is representable in w bits.
func Fits(v uint64, w uint) bool {
	return v&^Mask(w) == 0
}

// Slot returns the width stored in descriptor slot i.
func Slot(desc uint64, i int) uint {
	return uint(desc >> (uint(i) * SlotBits) & slotMask)
}

// PutSlot returns desc with slot i replaced by width w.
func PutSlot(desc uint64, i int, w uint) uint64 {
	shift := uint(i) * SlotBits
	return desc&^(uint64(slotMask)<<shift) | uint64(w&slotMask)<<shift
}

// SlotCount returns the number of contiguous non-zero slots starting at
// slot 0. Field widths are never zero, so this is the field count of a
// well-formed descriptor.
func SlotCount(desc uint64) int {
	n := 0
	for desc != 0 {
		n++
		desc >>= SlotBits
	}
	return n
}

// TotalWidth sums every slot of the descriptor.
func TotalWidth(desc uint64) uint {
	total := uint(0)
	for desc != 0 {
		total += uint(desc & slotMask)
		desc >>= SlotBits
	}
	return total
}
