package packed

// Width is the constraint for field width type arguments. It is satisfied
// only by the W1 through W64 marker types below, so every field width is
// fixed at compile time and part of the schema's type identity.
type Width interface {
	fieldWidth() uint
}

// W1 through W64 select the bit width of a pushed field. They carry no
// data; their only job is to appear as type arguments to Push and to the
// Packed schema types.
type (
	W1  struct{}
	W2  struct{}
	W3  struct{}
	W4  struct{}
	W5  struct{}
	W6  struct{}
	W7  struct{}
	W8  struct{}
	W9  struct{}
	W10 struct{}
	W11 struct{}
	W12 struct{}
	W13 struct{}
	W14 struct{}
	W15 struct{}
	W16 struct{}
	W17 struct{}
	W18 struct{}
	W19 struct{}
	W20 struct{}
	W21 struct{}
	W22 struct{}
	W23 struct{}
	W24 struct{}
	W25 struct{}
	W26 struct{}
	W27 struct{}
	W28 struct{}
	W29 struct{}
	W30 struct{}
	W31 struct{}
	W32 struct{}
	W33 struct{}
	W34 struct{}
	W35 struct{}
	W36 struct{}
	W37 struct{}
	W38 struct{}
	W39 struct{}
	W40 struct{}
	W41 struct{}
	W42 struct{}
	W43 struct{}
	W44 struct{}
	W45 struct{}
	W46 struct{}
	W47 struct{}
	W48 struct{}
	W49 struct{}
	W50 struct{}
	W51 struct{}
	W52 struct{}
	W53 struct{}
	W54 struct{}
	W55 struct{}
	W56 struct{}
	W57 struct{}
	W58 struct{}
	W59 struct{}
	W60 struct{}
	W61 struct{}
	W62 struct{}
	W63 struct{}
	W64 struct{}
)

func (W1) fieldWidth() uint  { return 1 }
func (W2) fieldWidth() uint  { return 2 }
func (W3) fieldWidth() uint  { return 3 }
func (W4) fieldWidth() uint  { return 4 }
func (W5) fieldWidth() uint  { return 5 }
func (W6) fieldWidth() uint  { return 6 }
func (W7) fieldWidth() uint  { return 7 }
func (W8) fieldWidth() uint  { return 8 }
func (W9) fieldWidth() uint  { return 9 }
func (W10) fieldWidth() uint { return 10 }
func (W11) fieldWidth() uint { return 11 }
func (W12) fieldWidth() uint { return 12 }
func (W13) fieldWidth() uint { return 13 }
func (W14) fieldWidth() uint { return 14 }
func (W15) fieldWidth() uint { return 15 }
func (W16) fieldWidth() uint { return 16 }
func (W17) fieldWidth() uint { return 17 }
func (W18) fieldWidth() uint { return 18 }
func (W19) fieldWidth() uint { return 19 }
func (W20) fieldWidth() uint { return 20 }
func (W21) fieldWidth() uint { return 21 }
func (W22) fieldWidth() uint { return 22 }
func (W23) fieldWidth() uint { return 23 }
func (W24) fieldWidth() uint { return 24 }
func (W25) fieldWidth() uint { return 25 }
func (W26) fieldWidth() uint { return 26 }
func (W27) fieldWidth() uint { return 27 }
func (W28) fieldWidth() uint { return 28 }
func (W29) fieldWidth() uint { return 29 }
func (W30) fieldWidth() uint { return 30 }
func (W31) fieldWidth() uint { return 31 }
func (W32) fieldWidth() uint { return 32 }
func (W33) fieldWidth() uint { return 33 }
func (W34) fieldWidth() uint { return 34 }
func (W35) fieldWidth() uint { return 35 }
func (W36) fieldWidth() uint { return 36 }
func (W37) fieldWidth() uint { return 37 }
func (W38) fieldWidth() uint { return 38 }
func (W39) fieldWidth() uint { return 39 }
func (W40) fieldWidth() uint { return 40 }
func (W41) fieldWidth() uint { return 41 }
func (W42) fieldWidth() uint { return 42 }
func (W43) fieldWidth() uint { return 43 }
func (W44) fieldWidth() uint { return 44 }
func (W45) fieldWidth() uint { return 45 }
func (W46) fieldWidth() uint { return 46 }
func (W47) fieldWidth() uint { return 47 }
func (W48) fieldWidth() uint { return 48 }
func (W49) fieldWidth() uint { return 49 }
func (W50) fieldWidth() uint { return 50 }
func (W51) fieldWidth() uint { return 51 }
func (W52) fieldWidth() uint { return 52 }
func (W53) fieldWidth() uint { return 53 }
func (W54) fieldWidth() uint { return 54 }
func (W55) fieldWidth() uint { return 55 }
func (W56) fieldWidth() uint { return 56 }
func (W57) fieldWidth() uint { return 57 }
func (W58) fieldWidth() uint { return 58 }
func (W59) fieldWidth() uint { return 59 }
func (W60) fieldWidth() uint { return 60 }
func (W61) fieldWidth() uint { return 61 }
func (W62) fieldWidth() uint { return 62 }
func (W63) fieldWidth() uint { return 63 }
func (W64) fieldWidth() uint { return 64 }

// WidthOf returns the bit width selected by W.
func WidthOf[W Width]() uint {
	var w W
	return w.fieldWidth()
}
