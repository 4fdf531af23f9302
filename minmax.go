package packed

import "github.com/wippyai/packed/internal/bits"

// Min returns the field-wise minimum of two packed values. Both arguments
// share the schema P, so the fields line up by construction.
func Min[P Schema[P]](a, b P) P {
	return Create[P](fieldwise(a.Bits(), b.Bits(), a.FieldSizes(), a.FieldCount(), true))
}

// Max returns the field-wise maximum of two packed values.
func Max[P Schema[P]](a, b P) P {
	return Create[P](fieldwise(a.Bits(), b.Bits(), a.FieldSizes(), a.FieldCount(), false))
}

func fieldwise(a, b, desc uint64, n uint, pickMin bool) uint64 {
	var out uint64
	shift := uint(0)
	// Slot n-1 is the most recently pushed field and sits at shift 0.
	for i := int(n) - 1; i >= 0; i-- {
		w := bits.Slot(desc, i)
		m := bits.Mask(w)
		av := a >> shift & m
		bv := b >> shift & m
		v := av
		if pickMin == (bv < av) {
			v = bv
		}
		out |= v << shift
		shift += w
	}
	return out
}
