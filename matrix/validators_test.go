// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateTall covers the rows >= cols requirement of the factorizations.
func TestValidateTall(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateTall(MustDense(t, 4, 3)))
	require.NoError(t, matrix.ValidateTall(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateTall(MustDense(t, 3, 4)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateTall(nil), matrix.ErrNilMatrix)
}

// TestValidateSquareAndMul checks the remaining shape guards.
func TestValidateSquareAndMul(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestValidateColumnAndVecLen checks index and vector-length guards.
func TestValidateColumnAndVecLen(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateColumn(m, 0))
	require.NoError(t, matrix.ValidateColumn(m, 2))
	require.ErrorIs(t, matrix.ValidateColumn(m, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateColumn(m, -1), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}
