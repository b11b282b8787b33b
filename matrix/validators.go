// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the index and shape checks.
//  - Return structured errors so call sites never format messages ad hoc.
//
// Note:
//  - Validators assume non-nil operands; callers own that precondition.

package matrix

// validateIndex checks a write target against the current shape.
// Only the upper bound is enforced; negative indices pass.
// Complexity: O(1).
func validateIndex(m *Matrix, row, col int) error {
	if row >= m.r || col >= m.c {
		return &IndexError{Row: row, Col: col, Rows: m.r, Cols: m.c}
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows().
//
// Returns a *ShapeError (errors.Is ErrDimensionMismatch) otherwise.
// Complexity: O(1).
func ValidateMulShape(a, b *Matrix) error {
	if a.c != b.r {
		return &ShapeError{
			LeftRows:  a.r,
			LeftCols:  a.c,
			RightRows: b.r,
			RightCols: b.c,
		}
	}

	return nil
}
