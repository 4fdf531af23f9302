package packed

import (
	"fmt"

	"github.com/wippyai/packed/internal/bits"
)

// Schema is the constraint shared by every packed schema type: Empty and
// any nesting of Packed. The create method keeps the constraint closed to
// this package.
type Schema[S any] interface {
	create(raw uint64) S

	// FieldCount reports how many fields the schema holds.
	FieldCount() uint

	// FieldSizes returns the schema's width descriptor: one 8-bit slot
	// per field, first pushed field in the lowest slot.
	FieldSizes() uint64

	// Bits returns the raw register word.
	Bits() uint64
}

// Empty is the zero-field schema, the starting point for composing a
// packed value. It holds no runtime state; it exists so that the first
// Push has something to stand on. Empty has no Back and no Pop, so
// decomposing past the last field does not compile.
type Empty struct{}

func (Empty) create(uint64) Empty { return Empty{} }

func (Empty) FieldCount() uint { return 0 }

func (Empty) FieldSizes() uint64 { return 0 }

func (Empty) Bits() uint64 { return 0 }

// Packed is a field of width W on top of the schema R, the whole stack
// collapsed into a single uint64. The most recently pushed field occupies
// the low-order bits. A Packed value is 8 bytes with no indirection, so
// generated code can pass and return it in one register.
type Packed[W Width, R Schema[R]] struct {
	bits uint64
}

// Create builds a packed value of schema P from a raw register word. The
// word is taken verbatim; no validation is performed.
func Create[P Schema[P]](raw uint64) P {
	var p P
	return p.create(raw)
}

// Push prepends a field of width X holding value to the schema of p.
//
// The value is not masked: a value wider than X bits bleeds into the
// neighboring field. Callers own that invariant, the same way they own
// index bounds on unsafe slices.
//
// Push panics if the resulting schema would exceed 8 fields or 64 total
// bits. Both are schema-shape errors, knowable when the call is written,
// so they are treated as programmer mistakes rather than runtime errors.
func Push[X Width, P Schema[P]](p P, value uint64) Packed[X, P] {
	w := WidthOf[X]()
	if n := p.FieldCount(); n >= bits.MaxFields {
		panic(fmt.Sprintf("packed: push exceeds %d fields", bits.MaxFields))
	}
	if total := bits.TotalWidth(p.FieldSizes()) + w; total > bits.MaxTotalBits {
		panic(fmt.Sprintf("packed: total width %d exceeds %d bits", total, bits.MaxTotalBits))
	}
	return Packed[X, P]{bits: p.Bits()<<w | value}
}

func (p Packed[W, R]) create(raw uint64) Packed[W, R] {
	return Packed[W, R]{bits: raw}
}

// Pop discards the most recently pushed field and reinterprets the
// remaining bits as the prior schema.
func (p Packed[W, R]) Pop() R {
	var r R
	return r.create(p.bits >> WidthOf[W]())
}

// Back returns the value of the most recently pushed field, masked to its
// declared width.
func (p Packed[W, R]) Back() uint64 {
	return p.bits & bits.Mask(WidthOf[W]())
}

// Bits returns the raw register word holding every field.
func (p Packed[W, R]) Bits() uint64 {
	return p.bits
}

// FieldCount reports how many fields the schema holds.
func (Packed[W, R]) FieldCount() uint {
	var r R
	return 1 + r.FieldCount()
}

// FieldSizes returns the width descriptor for the schema: 8 bits per
// field, this field in the slot above R's.
func (Packed[W, R]) FieldSizes() uint64 {
	var r R
	return uint64(WidthOf[W]())<<(r.FieldCount()*bits.SlotBits) | r.FieldSizes()
}

// String formats the packed value field by field, most recently pushed
// field first.
func (p Packed[W, R]) String() string {
	desc := p.FieldSizes()
	n := int(p.FieldCount())
	out := make([]byte, 0, 32)
	shift := uint(0)
	for i := n - 1; i >= 0; i-- {
		w := bits.Slot(desc, i)
		v := p.bits >> shift & bits.Mask(w)
		if len(out) > 0 {
			out = append(out, '|')
		}
		out = fmt.Appendf(out, "u%d:%d", w, v)
		shift += w
	}
	return string(out)
}
