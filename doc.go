// Package sparsemat is a small toolkit for sparse integer matrices: storage
// that keeps only written cells, element-wise addition and subtraction,
// multiplication, and a line-oriented "(row,col,value)" text format.
//
// Under the hood, everything is organized under a few packages:
//
//	matrix/           — the sparse Matrix type, Add/Sub/Mul, Parse/Load/Save, errors
//	calculator/       — menu and batch driver over two operand files
//	internal/logging/ — slog-based logger for the CLI
//	cmd/sparsecalc/   — the command-line entry point
//
// Quick example:
//
//	a, _ := matrix.Load("sample_inputs/matrix1.txt")
//	b, _ := matrix.Load("sample_inputs/matrix2.txt")
//	p, err := matrix.Mul(a, b) // *matrix.ShapeError when a.Cols() != b.Rows()
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsecalc@latest
package sparsemat
