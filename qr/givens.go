// SPDX-License-Identifier: MIT

package qr

import (
	"math"

	"github.com/katalvlaran/qrkit/matrix"
)

// Rotation returns the Givens rotation that maps (a, b) onto (d, 0):
//
//	[ c  s ] [a]   [d]
//	[-s  c ] [b] = [0]
//
// with d = hypot(a, b) ≥ 0, c = a/d and s = b/d. When a and b are both zero
// no rotation exists; Rotation returns the identity (1, 0, 0) and ok=false.
func Rotation(a, b float64) (c, s, d float64, ok bool) {
	if a == 0 && b == 0 {
		return 1, 0, 0, false
	}
	d = math.Hypot(a, b)

	return a / d, b / d, d, true
}

// Givens computes the full QR factorization of a using Givens rotations.
//
// Implementation:
//   - Stage 1: validate a (non-nil, rows ≥ cols); R starts as a copy of a,
//     Q as the m×m identity.
//   - Stage 2: for each column i and each row j below the diagonal, rotate
//     rows i and j of R so that R[j,i] becomes exactly zero, and apply the
//     transposed rotation to columns i and j of Q. Q·R = A is preserved
//     after every step.
//   - Stage 3: once column i is finished, negate row i of R and column i of
//     Q if R[i,i] is negative. Later rotations never touch either, so the
//     diagonal of the result is non-negative.
//
// Pairs with both entries zero are counted in Diagnostics.Degenerate and
// logged at debug level; pairs with a zero target are counted in
// Diagnostics.Skipped. Neither produces NaN. The input is never modified.
//
// Errors:
//   - ErrShapeMismatch (also matching matrix.ErrDimensionMismatch or
//     matrix.ErrNilMatrix) when a is nil or has fewer rows than columns.
//   - ErrShapeMismatch (also matching matrix.ErrInvalidDimensions) when a
//     has no rows or no columns.
//
// Complexity:
//   - Time O(m²·n), Space O(m² + m·n).
func Givens(a matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateTall(a); err != nil {
		return nil, shapeErrorf(opGivens, err)
	}
	if a.Rows() == 0 || a.Cols() == 0 {
		return nil, shapeErrorf(opGivens, matrix.ErrInvalidDimensions)
	}

	r, err := matrix.DenseCopy(a)
	if err != nil {
		return nil, qrErrorf(opGivens, err)
	}
	m, n := r.Shape()
	q, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, qrErrorf(opGivens, err)
	}

	rd, qd := r.RawData(), q.RawData()
	var (
		diag    Diagnostics
		i, j    int
		x, y    float64
		c, s, d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < m; j++ {
			x, y = rd[i*n+i], rd[j*n+i]
			switch {
			case x == 0 && y == 0:
				diag.Degenerate++
				o.logger.Debug().
					Str("method", GivensMethod.String()).
					Int("column", i).
					Int("row", j).
					Msg("degenerate rotation skipped")
			case y == 0:
				diag.Skipped++
			default:
				c, s, d, _ = Rotation(x, y)
				rotateRows(rd, n, i, j, c, s, d)
				rotateCols(qd, m, i, j, c, s)
				diag.Rotations++
			}
		}
		if rd[i*n+i] < 0 {
			flipSign(rd, qd, m, n, i)
			diag.SignFlips++
		}
	}

	diag.NonFinite = hasNonFinite(qd) || hasNonFinite(rd)

	return &Result{Method: GivensMethod, Q: q, R: r, Diagnostics: diag}, nil
}

// rotateRows applies the rotation to rows i and j of the row-major m×n
// buffer rd. Entries left of column i are already zero in both rows.
// The pivot column is written exactly: R[i,i] = d, R[j,i] = 0.
func rotateRows(rd []float64, n, i, j int, c, s, d float64) {
	rd[i*n+i] = d
	rd[j*n+i] = 0

	var k int
	var ri, rj float64
	for k = i + 1; k < n; k++ {
		ri, rj = rd[i*n+k], rd[j*n+k]
		rd[i*n+k] = c*ri + s*rj
		rd[j*n+k] = -s*ri + c*rj
	}
}

// rotateCols right-multiplies the m×m buffer qd by the transposed rotation,
// mixing columns i and j. Both old values are read before either is written.
func rotateCols(qd []float64, m, i, j int, c, s float64) {
	var k int
	var qi, qj float64
	for k = 0; k < m; k++ {
		qi, qj = qd[k*m+i], qd[k*m+j]
		qd[k*m+i] = c*qi + s*qj
		qd[k*m+j] = -s*qi + c*qj
	}
}

// flipSign negates row i of R and column i of Q, leaving Q·R unchanged.
func flipSign(rd, qd []float64, m, n, i int) {
	var k int
	for k = i; k < n; k++ {
		rd[i*n+k] = -rd[i*n+k]
	}
	for k = 0; k < m; k++ {
		qd[k*m+i] = -qd[k*m+i]
	}
}
