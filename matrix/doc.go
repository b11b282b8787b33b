// Package matrix offers a sparse, dictionary-of-keys integer matrix with
// element-wise arithmetic, multiplication and a small text codec.
//
// The matrix package provides:
//
//   - Matrix: rows×cols storage that keeps only explicitly written cells,
//     in insertion order, with O(1) At/Set.
//   - Add, Sub: shape-tolerant sums sized to the larger extent on each axis.
//   - Mul: the classic triple loop, storing only non-zero products.
//   - Parse/Load and WriteTo/Serialize/Save for the "(row,col,value)" format.
//
// Reads are unchecked (At returns 0 for any unseen coordinate); writes are
// checked against the upper bound of each axis only (Set rejects
// row >= Rows() or col >= Cols(), and accepts negative indices).
//
// Errors are structured (*FormatError, *IndexError, *ShapeError) and wrap the
// sentinels ErrFormat, ErrOutOfRange and ErrDimensionMismatch; use errors.Is,
// errors.As or KindOf to tell them apart.
//
// See the examples in this package for usage patterns.
package matrix
