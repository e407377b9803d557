// SPDX-License-Identifier: MIT

package qr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// gonumR factorizes a with gonum's Householder QR and returns its m×n R.
func gonumR(t *testing.T, a *matrix.Dense) *mat.Dense {
	t.Helper()
	m, n := a.Shape()
	data := make([]float64, m*n)
	copy(data, a.RawData())

	var f mat.QR
	f.Factorize(mat.NewDense(m, n, data))
	var r mat.Dense
	f.RTo(&r)

	return &r
}

// Householder R may differ from ours by the sign of each row.
func TestFactor_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{4, 3}, {7, 7}, {15, 6}} {
		A := randomDense(t, shape[0], shape[1], int64(shape[0]+31*shape[1]))
		want := gonumR(t, A)

		for _, method := range []qr.Method{qr.GramSchmidtMethod, qr.GivensMethod} {
			res, err := qr.Factor(method, A)
			require.NoError(t, err)

			var i, j int
			for i = 0; i < shape[1]; i++ {
				for j = i; j < shape[1]; j++ {
					got, err := res.R.At(i, j)
					require.NoError(t, err)
					require.InDelta(t, math.Abs(want.At(i, j)), math.Abs(got), 1e-10,
						"%v %v R[%d,%d]", shape, method, i, j)
				}
			}
		}
	}
}

// Modified Gram–Schmidt loses orthogonality in proportion to the condition
// number (≈1.6e13 for n=10); rotations do not.
func TestFactor_HilbertOrthogonality(t *testing.T) {
	t.Parallel()

	H, err := matrix.NewHilbert(10)
	require.NoError(t, err)

	gs, err := qr.GramSchmidt(H)
	require.NoError(t, err)
	gsRep, err := qr.Verify(H, gs)
	require.NoError(t, err)

	gv, err := qr.Givens(H)
	require.NoError(t, err)
	gvRep, err := qr.Verify(H, gv)
	require.NoError(t, err)

	require.Less(t, gsRep.RelativeReconstructionError, 1e-12)
	require.Less(t, gvRep.RelativeReconstructionError, 1e-12)

	require.Less(t, gvRep.OrthogonalityError, 1e-13)
	require.Greater(t, gsRep.OrthogonalityError, 1e-8)
	require.Greater(t, gsRep.OrthogonalityError, 1e3*gvRep.OrthogonalityError)

	require.NoError(t, gvRep.Check(1e-12))
	require.ErrorIs(t, gsRep.Check(1e-12), qr.ErrVerificationFailed)
}
