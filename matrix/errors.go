// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and structured error values.
// This file defines the package-level sentinels and the three structured
// error types returned by the public surface. Every structured error unwraps
// to exactly one sentinel, so callers match with errors.Is and inspect the
// details with errors.As. No function panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Outer layers wrap with fmt.Errorf("ctx: %w", err); errors.Is keeps working.

var (
	// ErrFormat is returned when an input line does not match "(row,col,value)".
	ErrFormat = errors.New("matrix: input file has wrong format")

	// ErrOutOfRange indicates that a row or column index is at or above the
	// declared dimension on its axis.
	ErrOutOfRange = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes for Mul
	// (a.Cols() != b.Rows()).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ErrorKind is the closed set of failure categories of this package.
type ErrorKind int

const (
	// KindUnknown is reported for nil errors and errors not produced here.
	KindUnknown ErrorKind = iota
	// KindFormat marks a malformed input line during Parse/Load.
	KindFormat
	// KindIndex marks a Set outside the declared dimensions.
	KindIndex
	// KindShape marks a Mul with incompatible inner dimensions.
	KindShape
)

// String returns a short lower-case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindIndex:
		return "index"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// KindOf classifies err by the sentinel it wraps.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrOutOfRange):
		return KindIndex
	case errors.Is(err, ErrDimensionMismatch):
		return KindShape
	default:
		return KindUnknown
	}
}

// FormatReason tells which part of the "(row,col,value)" pattern was violated.
type FormatReason int

const (
	// ReasonParens: the trimmed line does not start with '(' and end with ')'.
	ReasonParens FormatReason = iota + 1
	// ReasonFieldCount: the line does not hold exactly three comma-separated fields.
	ReasonFieldCount
	// ReasonNotInteger: one of the fields does not parse as an int, or an index
	// equals the largest int and leaves no room for the inferred dimension.
	ReasonNotInteger
)

// String returns the human-readable rule that was broken.
func (r FormatReason) String() string {
	switch r {
	case ReasonParens:
		return "line must start with '(' and end with ')'"
	case ReasonFieldCount:
		return "line must contain exactly three comma-separated values"
	case ReasonNotInteger:
		return "value is not an integer"
	default:
		return "unknown format violation"
	}
}

// FormatError describes a malformed data line met while parsing.
//   - Line is 1-based and counts the two skipped header lines.
//   - Field is the 0-based field position for ReasonNotInteger, -1 otherwise.
//   - Err holds the strconv failure for ReasonNotInteger (strconv.ErrRange for
//     an index equal to the largest int).
type FormatError struct {
	Line   int          // 1-based line number in the input
	Text   string       // offending line, surrounding whitespace trimmed
	Reason FormatReason // which rule was broken
	Field  int          // field index for ReasonNotInteger, else -1
	Err    error        // underlying conversion error, may be nil
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Reason == ReasonNotInteger {
		return fmt.Sprintf("%v: line %d %q: field %d: %s", ErrFormat, e.Line, e.Text, e.Field, e.Reason)
	}

	return fmt.Sprintf("%v: line %d %q: %s", ErrFormat, e.Line, e.Text, e.Reason)
}

// Unwrap exposes ErrFormat and, when present, the conversion error.
func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormat, e.Err}
	}

	return []error{ErrFormat}
}

// IndexError is returned by Set when (Row, Col) is outside the Rows×Cols shape.
type IndexError struct {
	Row, Col   int // requested coordinates
	Rows, Cols int // shape at the time of the call
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) not within %dx%d", ErrOutOfRange, e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap exposes ErrOutOfRange.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// ShapeError is returned by Mul when the inner dimensions disagree.
type ShapeError struct {
	LeftRows, LeftCols   int
	RightRows, RightCols int
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: cannot multiply %dx%d by %dx%d: columns of the first matrix must equal rows of the second",
		ErrDimensionMismatch, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols)
}

// Unwrap exposes ErrDimensionMismatch.
func (e *ShapeError) Unwrap() error { return ErrDimensionMismatch }
