// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qrkit/matrix"
	"gonum.org/v1/gonum/floats"
)

// Result holds the factors of A = Q·R together with the diagnostics
// collected while computing them.
//
// Shapes for an m×n input (m ≥ n):
//   - GramSchmidtMethod: Q is m×n with orthonormal columns, R is n×n.
//   - GivensMethod:      Q is m×m orthogonal, R is m×n with rows n..m-1 zero.
type Result struct {
	Method      Method
	Q           *matrix.Dense
	R           *matrix.Dense
	Diagnostics Diagnostics
}

// Diagnostics records numerical events that do not abort a factorization.
type Diagnostics struct {
	// NearSingular lists the columns whose norm fell below the singular
	// tolerance during Gram–Schmidt. Division proceeds anyway.
	NearSingular []int

	// Rotations counts Givens rotations actually applied.
	Rotations int
	// Skipped counts eliminations where the target entry was already zero.
	Skipped int
	// Degenerate counts eliminations where both the pivot and the target
	// entry were zero.
	Degenerate int
	// SignFlips counts rows of R negated to keep the diagonal non-negative.
	SignFlips int

	// NonFinite is set when Q or R contains NaN or ±Inf.
	NonFinite bool
}

// Warnings renders the diagnostics as human-readable lines. Counters of
// routine events (applied or skipped rotations) are not reported.
func (d Diagnostics) Warnings() []string {
	var out []string
	for _, j := range d.NearSingular {
		out = append(out, fmt.Sprintf("column %d is nearly linearly dependent", j))
	}
	if d.Degenerate > 0 {
		out = append(out, fmt.Sprintf("%d degenerate rotation(s) skipped (zero pivot and target)", d.Degenerate))
	}
	if d.NonFinite {
		out = append(out, "factors contain NaN or Inf")
	}

	return out
}

// Thin returns the economy-size factors Q[:, :n] and R[:n, :], where n is
// the column count of the factorized matrix. For a Gram–Schmidt result the
// factors are already thin and copies are returned.
//
// Errors: ErrNilResult, ErrShapeMismatch when Q·R is undefined or R has
// fewer rows than columns.
func (r *Result) Thin() (*matrix.Dense, *matrix.Dense, error) {
	if r == nil || r.Q == nil || r.R == nil {
		return nil, nil, qrErrorf(opThin, ErrNilResult)
	}
	if err := matrix.ValidateMulCompatible(r.Q, r.R); err != nil {
		return nil, nil, shapeErrorf(opThin, err)
	}
	m, k := r.Q.Shape()
	n := r.R.Cols()
	if n > k || r.R.Rows() < n {
		return nil, nil, shapeErrorf(opThin, matrix.ErrDimensionMismatch)
	}

	q, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, nil, qrErrorf(opThin, err)
	}
	rr, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, qrErrorf(opThin, err)
	}

	qs, qd := r.Q.RawData(), q.RawData()
	var i int
	for i = 0; i < m; i++ {
		copy(qd[i*n:(i+1)*n], qs[i*k:i*k+n])
	}
	copy(rr.RawData(), r.R.RawData()[:n*n])

	return q, rr, nil
}

// hasNonFinite reports whether any entry of s is NaN or ±Inf.
func hasNonFinite(s []float64) bool {
	if floats.HasNaN(s) {
		return true
	}

	return math.IsInf(floats.Norm(s, math.Inf(1)), 1)
}
