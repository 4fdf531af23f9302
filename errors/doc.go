// Package errors provides structured error types for the packed library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: detail message, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCompile, errors.KindWidthOverflow).
//		Detail("width %d at field %d", 70, 2).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TooManyFields(errors.PhaseCompile, 9, 8)
//	err := errors.ValueOverflow(errors.PhasePack, 1, 0x1F, 4)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
