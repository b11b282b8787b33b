// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	fe := &matrix.FormatError{Line: 3, Text: "x", Reason: matrix.ReasonParens, Field: -1}
	ie := &matrix.IndexError{Row: 5, Col: 0, Rows: 2, Cols: 2}
	se := &matrix.ShapeError{LeftRows: 1, LeftCols: 2, RightRows: 3, RightCols: 4}

	require.Equal(t, matrix.KindUnknown, matrix.KindOf(nil))
	require.Equal(t, matrix.KindUnknown, matrix.KindOf(errors.New("other")))
	require.Equal(t, matrix.KindFormat, matrix.KindOf(fe))
	require.Equal(t, matrix.KindIndex, matrix.KindOf(ie))
	require.Equal(t, matrix.KindShape, matrix.KindOf(se))

	// Wrapping at an outer boundary keeps the kind.
	require.Equal(t, matrix.KindShape, matrix.KindOf(fmt.Errorf("calc: %w", se)))
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "format", matrix.KindFormat.String())
	require.Equal(t, "index", matrix.KindIndex.String())
	require.Equal(t, "shape", matrix.KindShape.String())
	require.Equal(t, "unknown", matrix.KindUnknown.String())
}

func TestErrorMessages(t *testing.T) {
	fe := &matrix.FormatError{Line: 4, Text: "(1,2)", Reason: matrix.ReasonFieldCount, Field: -1}
	require.Equal(t,
		`matrix: input file has wrong format: line 4 "(1,2)": line must contain exactly three comma-separated values`,
		fe.Error())

	ie := &matrix.IndexError{Row: 2, Col: 0, Rows: 2, Cols: 2}
	require.Equal(t, "matrix: index out of bounds: (2,0) not within 2x2", ie.Error())

	se := &matrix.ShapeError{LeftRows: 2, LeftCols: 3, RightRows: 2, RightCols: 3}
	require.Contains(t, se.Error(), "cannot multiply 2x3 by 2x3")
}

func TestFormatError_UnwrapsConversion(t *testing.T) {
	_, err := matrix.Parse(strings.NewReader(header + "(1,x,3)\n"))
	var fe *matrix.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, matrix.ReasonNotInteger, fe.Reason)
	require.Equal(t, 1, fe.Field)
	require.Error(t, fe.Err)
	require.Contains(t, fe.Error(), "field 1: value is not an integer")
}
