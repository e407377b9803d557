// SPDX-License-Identifier: MIT

package qr

import (
	"math"

	"github.com/katalvlaran/qrkit/matrix"
)

// GramSchmidt computes the thin QR factorization of a using modified
// Gram–Schmidt orthogonalization.
//
// Implementation:
//   - Stage 1: validate a (non-nil, rows ≥ cols) and copy it into Q.
//   - Stage 2: for each column j, set R[j,j] = ‖Q[:,j]‖ and normalize the
//     column; then for each later column k, set R[j,k] = ⟨Q[:,j], Q[:,k]⟩
//     and subtract R[j,k]·Q[:,j] from Q[:,k] immediately.
//
// A column whose norm falls below the singular tolerance is recorded in
// Diagnostics.NearSingular and logged at warn level; normalization still
// divides by that norm, so an exactly zero column yields NaN entries and
// Diagnostics.NonFinite. The input is never modified.
//
// Errors:
//   - ErrShapeMismatch (also matching matrix.ErrDimensionMismatch or
//     matrix.ErrNilMatrix) when a is nil or has fewer rows than columns.
//   - ErrShapeMismatch (also matching matrix.ErrInvalidDimensions) when a
//     has no rows or no columns.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n + n²).
func GramSchmidt(a matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateTall(a); err != nil {
		return nil, shapeErrorf(opGramSchmidt, err)
	}
	if a.Rows() == 0 || a.Cols() == 0 {
		return nil, shapeErrorf(opGramSchmidt, matrix.ErrInvalidDimensions)
	}

	q, err := matrix.DenseCopy(a)
	if err != nil {
		return nil, qrErrorf(opGramSchmidt, err)
	}
	m, n := q.Shape()
	r, err := matrix.Zeros(n, n)
	if err != nil {
		return nil, qrErrorf(opGramSchmidt, err)
	}

	// Kernels write through the raw buffers: NaN produced by a zero column
	// must reach the caller instead of being rejected by Set.
	qd, rd := q.RawData(), r.RawData()
	var (
		diag      Diagnostics
		i, j, k   int
		norm, rjk float64
	)
	for j = 0; j < n; j++ {
		if norm, err = matrix.ColumnNorm(q, j); err != nil {
			return nil, qrErrorf(opGramSchmidt, err)
		}
		rd[j*n+j] = norm
		if math.Abs(norm) < o.singularTol {
			diag.NearSingular = append(diag.NearSingular, j)
			o.logger.Warn().
				Str("method", GramSchmidtMethod.String()).
				Int("column", j).
				Float64("norm", norm).
				Msg("column is nearly linearly dependent")
		}

		for i = 0; i < m; i++ {
			qd[i*n+j] /= norm
		}

		for k = j + 1; k < n; k++ {
			if rjk, err = matrix.InnerProduct(q, j, k); err != nil {
				return nil, qrErrorf(opGramSchmidt, err)
			}
			rd[j*n+k] = rjk
			for i = 0; i < m; i++ {
				qd[i*n+k] -= rjk * qd[i*n+j]
			}
		}
	}

	diag.NonFinite = hasNonFinite(qd) || hasNonFinite(rd)

	return &Result{Method: GramSchmidtMethod, Q: q, R: r, Diagnostics: diag}, nil
}
