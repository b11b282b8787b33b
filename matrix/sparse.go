// SPDX-License-Identifier: MIT

// Package matrix - dictionary-of-keys storage & accessors.
//
// Purpose:
//   - Store only explicitly written cells; every other cell reads as 0.
//   - Keep insertion order so that serialization is deterministic.
//   - Expose At (unchecked read) and Set (checked write) with the asymmetry
//     documented on each method.
//
// Complexity quicksheet:
//   - New: O(1); At/Set: O(1) amortized; Clone/Elements: O(nnz); Equal: O(nnz).

package matrix

import "fmt"

// Matrix is a sparse two-dimensional matrix of int values.
//   - r,c hold the logical dimensions (rows, cols), both >= 0.
//   - entries holds stored cells in insertion order.
//   - index maps a (row, col) key to its position in entries.
//
// A Matrix is not safe for concurrent mutation.
type Matrix struct {
	r, c    int         // logical row and column counts
	entries []Element   // stored cells, first-insertion order
	index   map[key]int // (row,col) -> position in entries
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

const panicNegativeShape = "matrix: New: rows and cols must be non-negative"

// New creates an empty rows×cols matrix.
// Implementation:
//   - Stage 1: reject negative dimensions (programmer error, panics).
//   - Stage 2: allocate the empty index.
//
// A 0×0 matrix is legal and is what Parse returns for a file without data lines.
// Complexity: O(1).
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}

	return &Matrix{
		r:     rows,
		c:     cols,
		index: make(map[key]int),
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored entries, explicit zeros included.
func (m *Matrix) Len() int { return len(m.entries) }

// At returns the value stored at (row, col), or 0 when nothing is stored.
//
// At performs no bounds checking: any coordinate, including negative ones or
// ones past the shape, is legal and reads as 0 unless a value was stored there.
// Complexity: O(1).
func (m *Matrix) At(row, col int) int {
	if pos, ok := m.index[key{row, col}]; ok {
		return m.entries[pos].Value
	}

	return 0
}

// Set stores v at (row, col), overwriting any previous value.
//
// Set returns an *IndexError (errors.Is ErrOutOfRange) when row >= Rows() or
// col >= Cols(); the matrix is left unmodified. Negative indices are not
// rejected. Zero is stored like any other value.
// Complexity: O(1) amortized.
func (m *Matrix) Set(row, col, v int) error {
	if err := validateIndex(m, row, col); err != nil {
		return err
	}
	m.put(row, col, v)

	return nil
}

// put writes without bounds checks; callers guarantee the index is legal.
// An existing key keeps its position in the insertion order.
func (m *Matrix) put(row, col, v int) {
	k := key{row, col}
	if pos, ok := m.index[k]; ok {
		m.entries[pos].Value = v

		return
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Element{Row: row, Col: col, Value: v})
}

// Elements returns a copy of the stored entries in insertion order.
// Complexity: O(nnz).
func (m *Matrix) Elements() []Element {
	out := make([]Element, len(m.entries))
	copy(out, m.entries)

	return out
}

// Clone returns a deep copy; the clone shares no storage with m.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		r:       m.r,
		c:       m.c,
		entries: make([]Element, len(m.entries)),
		index:   make(map[key]int, len(m.index)),
	}
	copy(out.entries, m.entries)
	for k, pos := range m.index {
		out.index[k] = pos
	}

	return out
}

// Equal reports whether m and other have the same shape and the same stored
// mapping. Insertion order is ignored; an explicit zero differs from absence.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c || len(m.entries) != len(other.entries) {
		return false
	}
	for _, e := range m.entries {
		pos, ok := other.index[key{e.Row, e.Col}]
		if !ok || other.entries[pos].Value != e.Value {
			return false
		}
	}

	return true
}
