// SPDX-License-Identifier: MIT
// Package matrix: arithmetic over sparse matrices.
//
// All operations allocate a fresh result and never mutate or alias their
// operands. Add and Sub size the result to the element-wise max of the two
// shapes and never fail; Mul requires a.Cols() == b.Rows().
package matrix

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: allocate max(a.r,b.r) × max(a.c,b.c).
//   - Stage 2: copy a's entries verbatim in a's order.
//   - Stage 3: fold each b entry into whatever a left there (0 if absent).
//
// Writes bypass Set: every operand key respects its own shape, so it is in
// bounds for the larger result shape.
// Complexity: O(nnz(a) + nnz(b)).
func addSub(a, b *Matrix, sign int) *Matrix {
	out := New(max(a.r, b.r), max(a.c, b.c))
	out.entries = make([]Element, 0, len(a.entries)+len(b.entries))

	for _, e := range a.entries {
		out.put(e.Row, e.Col, e.Value)
	}
	for _, e := range b.entries {
		out.put(e.Row, e.Col, out.At(e.Row, e.Col)+sign*e.Value)
	}

	return out
}

// Add returns a + b.
// Shapes are not required to match: the result is sized to the larger extent
// on each axis and missing cells read as 0. Add never fails.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) *Matrix {
	return addSub(a, b, 1)
}

// Sub returns a - b, with the same shape policy as Add.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Matrix) *Matrix {
	return addSub(a, b, -1)
}

// Mul returns the matrix product a × b.
// Stage 1 (Validate): a.Cols() must equal b.Rows(), else *ShapeError.
// Stage 2 (Execute): for every output cell (i,j) accumulate Σ_t a[i,t]*b[t,j].
// Stage 3 (Finalize): store the cell only when the sum is non-zero.
//
// Every cell is visited, so the cost is O(r·k·c) regardless of sparsity,
// with O(1) lookups per access. Results are inserted in row-major order.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, err
	}

	rows, inner, cols := a.r, a.c, b.c
	out := New(rows, cols)
	var (
		i, j, t int // loop iterators
		sum     int
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for t = 0; t < inner; t++ {
				sum += a.At(i, t) * b.At(t, j)
			}
			if sum != 0 {
				out.put(i, j, sum)
			}
		}
	}

	return out, nil
}
