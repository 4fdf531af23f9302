package bits

import (
	"math"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		w    uint
		want uint64
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"three", 3, 0b111},
		{"eight", 8, 0xFF},
		{"thirty-two", 32, 0xFFFFFFFF},
		{"sixty-three", 63, math.MaxUint64 >> 1},
		{"sixty-four", 64, math.MaxUint64},
		{"beyond register", 100, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.w); got != tt.want {
				t.Errorf("Mask(%d) = %#x, want %#x", tt.w, got, tt.want)
			}
		})
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		w    uint
		want bool
	}{
		{"zero in zero bits", 0, 0, true},
		{"one in zero bits", 1, 0, false},
		{"max 3-bit value", 7, 3, true},
		{"over 3-bit value", 8, 3, false},
		{"max 63-bit value", math.MaxUint64 >> 1, 63, true},
		{"over 63-bit value", math.MaxUint64>>1 + 1, 63, false},
		{"anything in 64 bits", math.MaxUint64, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(tt.v, tt.w); got != tt.want {
				t.Errorf("Fits(%#x, %d) = %v, want %v", tt.v, tt.w, got, tt.want)
			}
		})
	}
}

func TestSlotRoundTrip(t *testing.T) {
	var desc uint64
	widths := []uint{3, 4, 5, 64, 1}
	for i, w := range widths {
		desc = PutSlot(desc, i, w)
	}
	for i, w := range widths {
		if got := Slot(desc, i); got != w {
			t.Errorf("Slot(desc, %d) = %d, want %d", i, got, w)
		}
	}
	if got := Slot(desc, len(widths)); got != 0 {
		t.Errorf("unused slot = %d, want 0", got)
	}
}

func TestPutSlotReplaces(t *testing.T) {
	desc := PutSlot(0, 0, 3)
	desc = PutSlot(desc, 1, 4)
	desc = PutSlot(desc, 0, 7)
	if got := Slot(desc, 0); got != 7 {
		t.Errorf("slot 0 after replace = %d, want 7", got)
	}
	if got := Slot(desc, 1); got != 4 {
		t.Errorf("slot 1 after replace = %d, want 4", got)
	}
}

func TestSlotCount(t *testing.T) {
	tests := []struct {
		name   string
		widths []uint
		want   int
	}{
		{"empty", nil, 0},
		{"single", []uint{5}, 1},
		{"three", []uint{3, 4, 5}, 3},
		{"full", []uint{8, 8, 8, 8, 8, 8, 8, 8}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var desc uint64
			for i, w := range tt.widths {
				desc = PutSlot(desc, i, w)
			}
			if got := SlotCount(desc); got != tt.want {
				t.Errorf("SlotCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalWidth(t *testing.T) {
	tests := []struct {
		name   string
		widths []uint
		want   uint
	}{
		{"empty", nil, 0},
		{"single", []uint{7}, 7},
		{"mixed", []uint{3, 4, 5}, 12},
		{"max", []uint{8, 8, 8, 8, 8, 8, 8, 8}, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var desc uint64
			for i, w := range tt.widths {
				desc = PutSlot(desc, i, w)
			}
			if got := TotalWidth(desc); got != tt.want {
				t.Errorf("TotalWidth = %d, want %d", got, tt.want)
			}
		})
	}
}
