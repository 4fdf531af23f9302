package layout

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/packed/errors"
	"github.com/wippyai/packed/internal/bits"
)

// Field describes one sub-field of a compiled layout.
type Field struct {
	Width uint   // declared bit width
	Shift uint   // bit offset within the register word
	Mask  uint64 // mask covering Width bits, unshifted
}

// Layout is a compiled runtime description of a packed register word. It
// is the dynamic counterpart of the root package's schema types, for
// callers whose field widths are only known at runtime. A Layout is
// immutable after Compile and safe for concurrent use.
type Layout struct {
	fields []Field
	total  uint
	desc   uint64
}

// Compile validates widths and builds a Layout. Widths are given in push
// order: the first width is the first field pushed, which ends up in the
// high-order bits. All faults are reported, not just the first.
func Compile(widths ...uint) (*Layout, error) {
	var errs error
	if len(widths) > bits.MaxFields {
		errs = multierr.Append(errs, errors.TooManyFields(errors.PhaseCompile, len(widths), bits.MaxFields))
	}
	total := uint(0)
	for i, w := range widths {
		if w == 0 || w > bits.MaxTotalBits {
			errs = multierr.Append(errs, errors.New(errors.PhaseCompile, errors.KindInvalidInput).
				Detail("field %d has width %d, want 1..%d", i, w, bits.MaxTotalBits).
				Value(w).
				Build())
			continue
		}
		total += w
	}
	if errs == nil && total > bits.MaxTotalBits {
		errs = multierr.Append(errs, errors.WidthOverflow(errors.PhaseCompile, total, bits.MaxTotalBits))
	}
	if errs != nil {
		return nil, errs
	}

	l := &Layout{
		fields: make([]Field, len(widths)),
		total:  total,
	}
	shift := total
	for i, w := range widths {
		shift -= w
		l.fields[i] = Field{Width: w, Shift: shift, Mask: bits.Mask(w)}
		l.desc = bits.PutSlot(l.desc, i, w)
	}

	Logger().Debug("compiled layout",
		zap.String("layout", l.String()),
		zap.Uint64("descriptor", l.desc))
	return l, nil
}

// FromDescriptor rebuilds a Layout from a width descriptor, the inverse
// of Descriptor. This is the bridge from a static schema type: feed it
// the schema's FieldSizes.
func FromDescriptor(desc uint64) (*Layout, error) {
	n := bits.SlotCount(desc)
	widths := make([]uint, n)
	for i := 0; i < n; i++ {
		w := bits.Slot(desc, i)
		if w == 0 {
			return nil, errors.InvalidData(errors.PhaseCompile, "descriptor has a zero slot below a used one")
		}
		widths[i] = w
	}
	return Compile(widths...)
}

// FieldCount reports the number of fields.
func (l *Layout) FieldCount() int { return len(l.fields) }

// TotalBits reports the sum of all field widths.
func (l *Layout) TotalBits() uint { return l.total }

// Descriptor returns the layout's width descriptor, identical in encoding
// to the static schema types' FieldSizes.
func (l *Layout) Descriptor() uint64 { return l.desc }

// Field returns the description of field i in push order.
func (l *Layout) Field(i int) (Field, error) {
	if i < 0 || i >= len(l.fields) {
		return Field{}, errors.OutOfBounds(errors.PhaseUnpack, i, len(l.fields))
	}
	return l.fields[i], nil
}

// Fields returns a copy of every field description in push order.
func (l *Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Pack assembles values into a register word. Unlike the static core's
// Push, Pack is fully checked: it rejects a value count mismatch and any
// value wider than its declared field.
func (l *Layout) Pack(values ...uint64) (uint64, error) {
	if len(values) != len(l.fields) {
		return 0, errors.New(errors.PhasePack, errors.KindInvalidInput).
			Detail("got %d values for %d fields", len(values), len(l.fields)).
			Build()
	}
	var out uint64
	for i, v := range values {
		f := l.fields[i]
		if !bits.Fits(v, f.Width) {
			return 0, errors.ValueOverflow(errors.PhasePack, i, v, f.Width)
		}
		out |= v << f.Shift
	}
	return out, nil
}

// Unpack splits a register word into field values in push order.
func (l *Layout) Unpack(word uint64) []uint64 {
	out := make([]uint64, len(l.fields))
	for i, f := range l.fields {
		out[i] = word >> f.Shift & f.Mask
	}
	return out
}

// Extract returns the value of field i from a register word.
func (l *Layout) Extract(word uint64, i int) (uint64, error) {
	f, err := l.Field(i)
	if err != nil {
		return 0, err
	}
	return word >> f.Shift & f.Mask, nil
}

// String formats the layout as "u3|u4|u5" in push order.
func (l *Layout) String() string {
	var b strings.Builder
	for i, f := range l.fields {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteByte('u')
		b.WriteString(strconv.FormatUint(uint64(f.Width), 10))
	}
	return b.String()
}
