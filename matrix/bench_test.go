// Package matrix_test provides benchmarks for the sparse arithmetic,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkS string
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, 0.1, 1337)
			B := RandomSparse(b, n, n, 0.1, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = matrix.Add(A, B)
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, 0.1, 11)
			B := RandomSparse(b, n, n, 0.1, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			text := RandomSparse(b, n, n, 0.1, 7).Serialize()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Parse(strings.NewReader(text))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
				sinkS = text
			}
		})
	}
}
