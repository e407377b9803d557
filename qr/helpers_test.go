// SPDX-License-Identifier: MIT

package qr_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
	"github.com/stretchr/testify/require"
)

// hide forces the non-*Dense input path.
type hide struct{ matrix.Matrix }

// empty is a Matrix with a zero-sized dimension, which *Dense cannot represent.
type empty struct{ rows, cols int }

func (e empty) Rows() int { return e.rows }
func (e empty) Cols() int { return e.cols }
func (e empty) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (e empty) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (e empty) Clone() matrix.Matrix { return e }

// exampleRows is the 4×3 matrix used throughout the factorization tests.
var exampleRows = [][]float64{
	{1, 0, 0},
	{1, 1, 0},
	{1, 1, 1},
	{1, 1, 1},
}

// exampleR is the unique upper-triangular factor of exampleRows with a
// positive diagonal.
var exampleR = [][]float64{
	{2, 1.5, 1},
	{0, math.Sqrt(3) / 2, 1 / math.Sqrt(3)},
	{0, 0, math.Sqrt(2.0 / 3.0)},
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

func requireInDeltaRows(t testing.TB, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j = 0; j < len(want[i]); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, delta, "[%d,%d]", i, j)
		}
	}
}

// requireValid runs Verify and Check and returns the report.
func requireValid(t testing.TB, a matrix.Matrix, res *qr.Result, tol float64) *qr.Report {
	t.Helper()
	rep, err := qr.Verify(a, res)
	require.NoError(t, err)
	require.NoError(t, rep.Check(tol))

	return rep
}
