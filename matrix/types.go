// SPDX-License-Identifier: MIT

// Package matrix: value types shared by storage, arithmetic and the text codec.
package matrix

// key is an ordered (row, col) pair used as the storage map key.
// Using ints keeps the key compact and hash-friendly.
type key struct {
	row int // row index
	col int // column index
}

// Element is one stored (row, col) → value entry.
type Element struct {
	Row   int
	Col   int
	Value int
}
