// Package packed encodes an ordered stack of small unsigned fields into a
// single 64-bit register word.
//
// Generated machine code that needs to hand several small results across a
// function boundary cannot afford an aggregate return type: anything that
// is not a plain machine word forces the costlier indirect-return calling
// convention. A Packed value is always exactly one uint64 with no hidden
// indirection, so it travels in a register.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	packed/          Root package with the static schema types (Empty, Packed, Push/Pop)
//	├── layout/      Runtime layouts for widths not known at compile time
//	├── errors/      Structured error types for debugging
//	├── internal/    Shared mask and descriptor arithmetic
//	└── cmd/inspect  Interactive breakdown of packed register words
//
// # Quick Start
//
// A schema is built by chaining Push calls; each call returns a more
// specific type, so the field widths and count live in the type system:
//
//	p := packed.Push[packed.W4](packed.Push[packed.W3](packed.Empty{}, 5), 9)
//
//	p.Back()       // 9, the most recently pushed field
//	p.Pop().Back() // 5
//	p.Bits()       // 89, the raw register word
//
// Decoding mirrors construction in reverse: alternate Back and Pop until
// the schema is exhausted. Popping past the last field does not compile.
//
// # Caller Obligations
//
// Push never masks: a value wider than its declared field silently bleeds
// into its neighbor. Schema shape violations (more than 8 fields, more
// than 64 total bits) panic at Push. The layout package offers a fully
// checked runtime counterpart when stricter handling is worth the cost.
package packed
