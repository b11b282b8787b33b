// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the unit tests.
//   • Keep fixture construction fatal-on-error to shorten test bodies.

package matrix_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// header is the two-line prefix the parser skips.
const header = "rows=?\ncols=?\n"

// FromElements BUILDS an r×c matrix holding els, in order, or fails the test.
func FromElements(t testing.TB, r, c int, els ...matrix.Element) *matrix.Matrix {
	t.Helper()
	m := matrix.New(r, c)
	for _, e := range els {
		require.NoError(t, m.Set(e.Row, e.Col, e.Value))
	}

	return m
}

// MustParse PARSES header+body or fails the test.
func MustParse(t testing.TB, body string) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Parse(strings.NewReader(header + body))
	require.NoError(t, err)

	return m
}

// ToMap flattens the stored entries for order-insensitive comparison.
func ToMap(m *matrix.Matrix) map[[2]int]int {
	out := make(map[[2]int]int, m.Len())
	for _, e := range m.Elements() {
		out[[2]int{e.Row, e.Col}] = e.Value
	}

	return out
}

// RandomSparse FILLS an r×c matrix with roughly density*r*c non-zero cells.
// Values are in [-9, 9] \ {0}; the generator is seeded for determinism.
func RandomSparse(t testing.TB, r, c int, density float64, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := rng.Intn(9) + 1
			if rng.Intn(2) == 0 {
				v = -v
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// scenarioA is the 2×2 matrix [[1,2],[3,4]].
func scenarioA(t testing.TB) *matrix.Matrix {
	return FromElements(t, 2, 2,
		matrix.Element{Row: 0, Col: 0, Value: 1},
		matrix.Element{Row: 0, Col: 1, Value: 2},
		matrix.Element{Row: 1, Col: 0, Value: 3},
		matrix.Element{Row: 1, Col: 1, Value: 4},
	)
}

// scenarioI is the 2×2 identity.
func scenarioI(t testing.TB) *matrix.Matrix {
	return FromElements(t, 2, 2,
		matrix.Element{Row: 0, Col: 0, Value: 1},
		matrix.Element{Row: 1, Col: 1, Value: 1},
	)
}
