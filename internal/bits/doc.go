// Package bits provides the mask and descriptor arithmetic shared by the
// static schema types and the runtime layout compiler.
//
// A descriptor is a uint64 recording each field's bit width in an 8-bit
// slot: slot 0 holds the first pushed field, the highest used slot holds
// the most recently pushed one. Well-formed descriptors have no zero
// slots below a non-zero slot.
//
// This package is internal to the module.
package bits
