package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile Phase = "compile" // layout compilation
	PhasePack    Phase = "pack"    // packing values into a register word
	PhaseUnpack  Phase = "unpack"  // decomposing a register word
	PhaseInspect Phase = "inspect" // inspector command
)

// Kind categorizes the error
type Kind string

const (
	KindTooManyFields Kind = "too_many_fields"
	KindWidthOverflow Kind = "width_overflow"
	KindValueOverflow Kind = "value_overflow"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindInvalidInput  Kind = "invalid_input"
	KindInvalidData   Kind = "invalid_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TooManyFields reports a layout exceeding the field-count limit.
func TooManyFields(phase Phase, got, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTooManyFields,
		Detail: fmt.Sprintf("%d fields exceeds maximum of %d", got, max),
		Value:  got,
	}
}

// WidthOverflow reports field widths that do not fit the register.
func WidthOverflow(phase Phase, totalBits, max uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWidthOverflow,
		Detail: fmt.Sprintf("total width %d bits exceeds %d-bit register", totalBits, max),
		Value:  totalBits,
	}
}

// ValueOverflow reports a value wider than its declared field.
func ValueOverflow(phase Phase, field int, value uint64, width uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindValueOverflow,
		Detail: fmt.Sprintf("value 0x%X does not fit field %d (%d bits)", value, field, width),
		Value:  value,
	}
}

// OutOfBounds reports a field index outside the layout.
func OutOfBounds(phase Phase, index, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("field index %d out of bounds (%d fields)", index, count),
		Value:  index,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
