// Package layout compiles runtime descriptions of packed register words.
//
// The root packed package fixes field widths in the type system, which is
// the right tool when the layout is known where the code is written. A
// code generator discovering layouts from its input needs the same
// arithmetic with widths as plain values; that is this package.
//
// A Layout is compiled once, validated fully (field count, width range,
// total width), and then packs and unpacks register words:
//
//	l, err := layout.Compile(3, 4)
//	word, err := l.Pack(5, 9) // 89
//	l.Unpack(word)            // [5 9]
//
// Layout.Descriptor and FromDescriptor interoperate with the static
// schema types' FieldSizes encoding, so a register word produced by one
// side can always be decoded by the other.
//
// Unlike the static core, Pack rejects values wider than their field.
package layout
