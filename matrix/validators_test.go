// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateMulShape(t *testing.T) {
	require.NoError(t, matrix.ValidateMulShape(matrix.New(2, 3), matrix.New(3, 5)))
	require.NoError(t, matrix.ValidateMulShape(matrix.New(0, 0), matrix.New(0, 4)))

	err := matrix.ValidateMulShape(matrix.New(2, 3), matrix.New(2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
