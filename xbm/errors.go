package xbm

import (
	"errors"
	"fmt"
)

// ErrPaddingBits is returned by DecodeStrict when the unused bits at the
// end of a row are not zero.
var ErrPaddingBits = errors.New("xbm: non-zero row padding bits")

// SyntaxError reports a lexical or grammatical violation at a specific
// position in the source text.
type SyntaxError struct {
	Offset int // byte offset into the source
	Line   int // 1-based line number
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xbm: syntax error at line %d (offset %d): %s", e.Line, e.Offset, e.Msg)
}

// MissingFieldError reports a required #define that never appeared.
type MissingFieldError struct {
	Field string // "width", "height", "x_hot" or "y_hot"
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("xbm: missing #define for %s", e.Field)
}

// MismatchError reports a name prefix that disagrees between declarations.
type MismatchError struct {
	Expected string
	Found    string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("xbm: name mismatch: expected %q, found %q", e.Expected, e.Found)
}

// InvalidIdentifierError reports a name that fails the identifier grammar.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("xbm: invalid identifier %q", e.Name)
}

// InvalidByteValueError reports an array element outside the range of a byte.
type InvalidByteValueError struct {
	Raw string // literal as it appeared in the source
}

func (e *InvalidByteValueError) Error() string {
	return fmt.Sprintf("xbm: invalid byte value %q", e.Raw)
}

// SizeMismatchError reports a packed byte count inconsistent with the
// declared image dimensions.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("xbm: size mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// RangeError reports a width, height or hotspot coordinate outside its
// valid bounds.
type RangeError struct {
	Field string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("xbm: %s out of range: %d", e.Field, e.Value)
}
