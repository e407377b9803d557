// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/stretchr/testify/require"
)

// exampleA is the 4×3 matrix used throughout the QR examples.
var exampleA = []float64{
	1, 0, 0,
	1, 1, 0,
	1, 1, 1,
	1, 1, 1,
}

// ---------- 1. Mul ----------

func TestMul_Known(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	B := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	C, err := matrix.Mul(A, B)
	require.NoError(t, err)
	RequireMatrixInDelta(t, [][]float64{{58, 64}, {139, 154}}, C, 0)

	// fallback path must agree exactly
	Cslow, err := matrix.Mul(hide{A}, hide{B})
	require.NoError(t, err)
	RequireMatrixInDelta(t, [][]float64{{58, 64}, {139, 154}}, Cslow, 0)
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 3)

	_, err := matrix.Mul(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, B)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(A, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_InputsNotMutated(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 4, 4)
	RandomFill(t, A, 7)
	before := A.ToRows()

	_, err := matrix.Mul(A, A)
	require.NoError(t, err)
	require.Equal(t, before, A.ToRows())
}

// ---------- 2. Transpose ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 4, 3, exampleA)
	want := [][]float64{
		{1, 1, 1, 1},
		{0, 1, 1, 1},
		{0, 0, 1, 1},
	}

	At, err := matrix.Transpose(A)
	require.NoError(t, err)
	RequireMatrixInDelta(t, want, At, 0)

	AtSlow, err := matrix.Transpose(hide{A})
	require.NoError(t, err)
	RequireMatrixInDelta(t, want, AtSlow, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 3. Sub ----------

func TestSub(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})
	B := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	for _, tc := range []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense", A, B},
		{"fallback", hide{A}, B},
	} {
		D, err := matrix.Sub(tc.a, tc.b)
		require.NoError(t, err, tc.name)
		RequireMatrixInDelta(t, [][]float64{{4, 4}, {4, 4}}, D, 0)
	}

	_, err := matrix.Sub(A, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- 4. InnerProduct / ColumnNorm ----------

func TestInnerProductAndColumnNorm(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 4, 3, exampleA)

	tests := []struct {
		name string
		m    matrix.Matrix
	}{
		{"dense", A},
		{"fallback", hide{A}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ip, err := matrix.InnerProduct(tc.m, 0, 1)
			require.NoError(t, err)
			require.Equal(t, 3.0, ip)

			ip, err = matrix.InnerProduct(tc.m, 2, 1)
			require.NoError(t, err)
			require.Equal(t, 2.0, ip)

			n, err := matrix.ColumnNorm(tc.m, 0)
			require.NoError(t, err)
			require.Equal(t, 2.0, n)

			n, err = matrix.ColumnNorm(tc.m, 1)
			require.NoError(t, err)
			require.InDelta(t, math.Sqrt(3), n, 1e-15)
		})
	}

	_, err := matrix.InnerProduct(A, 0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ColumnNorm(A, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.InnerProduct(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 5. MatVec ----------

func TestMatVec(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{A}, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(A, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(A, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 6. Norms ----------

func TestFrobeniusNormAndMaxAbs(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{3, 0, 0, -4})

	f, err := matrix.FrobeniusNorm(A)
	require.NoError(t, err)
	require.InDelta(t, 5.0, f, 1e-15)

	f, err = matrix.FrobeniusNorm(hide{A})
	require.NoError(t, err)
	require.InDelta(t, 5.0, f, 1e-15)

	mx, err := matrix.MaxAbs(A)
	require.NoError(t, err)
	require.Equal(t, 4.0, mx)

	A.RawData()[1] = math.NaN()
	mx, err = matrix.MaxAbs(A)
	require.NoError(t, err)
	require.True(t, math.IsNaN(mx))

	_, err = matrix.FrobeniusNorm(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 1, 2, []float64{1, 2})
	B := NewFilledDense(t, 1, 2, []float64{1 + 1e-12, 2})
	C := NewFilledDense(t, 1, 2, []float64{1.1, 2})

	ok, err := matrix.AllClose(A, B)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(A, C)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(A, C, matrix.WithEpsilon(0.2))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(A, MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
}

// ---------- 7. PowerIteration ----------

func TestPowerIteration_Hilbert3(t *testing.T) {
	t.Parallel()

	H, err := matrix.NewHilbert(3)
	require.NoError(t, err)

	x0 := []float64{1, 1, 1}
	mu, x, err := matrix.PowerIteration(H, x0, 60)
	require.NoError(t, err)
	// dominant eigenvalue of the 3×3 Hilbert matrix
	require.InDelta(t, 1.4083189271, mu, 1e-8)
	require.Len(t, x, 3)
	require.Equal(t, []float64{1, 1, 1}, x0, "x0 must not be mutated")

	// x is an eigenvector: H·x ≈ mu·x
	hx, err := matrix.MatVec(H, x)
	require.NoError(t, err)
	for i := range x {
		require.InDelta(t, mu*x[i], hx[i], 1e-9)
	}
}

func TestPowerIteration_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.PowerIteration(MustDense(t, 2, 3), []float64{1, 1, 1}, 5)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = matrix.PowerIteration(MustDense(t, 2, 2), []float64{1}, 5)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.PowerIteration(MustDense(t, 2, 2), []float64{1, 1}, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	mu, x, err := matrix.PowerIteration(MustDense(t, 2, 2), []float64{1, 1}, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, mu)
	require.Equal(t, []float64{0, 0}, x)
}
