// SPDX-License-Identifier: MIT

package qr

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qrkit/matrix"
)

// Report is the outcome of Verify. All error figures are Frobenius norms
// except MaxResidual, the largest entry of |A − Q·R|, and
// TriangularityError, the largest magnitude below R's diagonal.
type Report struct {
	Method Method

	// Reconstructed is Q·R.
	Reconstructed matrix.Matrix
	// Gram is Qᵀ·Q.
	Gram matrix.Matrix

	ReconstructionError         float64 // ‖A − Q·R‖
	RelativeReconstructionError float64 // ‖A − Q·R‖ / ‖A‖, or the absolute value when ‖A‖ = 0
	MaxResidual                 float64 // max |A[i,j] − (Q·R)[i,j]|
	OrthogonalityError          float64 // ‖Qᵀ·Q − I‖
	TriangularityError          float64 // max |R[i,j]| for i > j
	MinDiagonal                 float64 // min R[i,i]
}

// Verify measures how well res factorizes a.
//
// Implementation:
//   - Stage 1: check that res carries both factors and that Q·R has the
//     shape of a.
//   - Stage 2: form Q·R and Qᵀ·Q, then take the residual norms (Frobenius
//     and entry-wise max) and scan R below its diagonal.
//
// Verify never fails on numerical grounds; use Report.Check for that.
//
// Errors:
//   - ErrNilResult, ErrShapeMismatch, matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(m·k·n + m·k²) where Q is m×k, Space O(m·n + k²).
func Verify(a matrix.Matrix, res *Result) (*Report, error) {
	if res == nil || res.Q == nil || res.R == nil {
		return nil, qrErrorf(opVerify, ErrNilResult)
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, shapeErrorf(opVerify, err)
	}
	if err := matrix.ValidateMulCompatible(res.Q, res.R); err != nil {
		return nil, shapeErrorf(opVerify, err)
	}
	if res.Q.Rows() != a.Rows() || res.R.Cols() != a.Cols() {
		return nil, shapeErrorf(opVerify, matrix.ErrDimensionMismatch)
	}

	prod, err := matrix.Mul(res.Q, res.R)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	diff, err := matrix.Sub(a, prod)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	recon, err := matrix.FrobeniusNorm(diff)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	maxRes, err := matrix.MaxAbs(diff)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	normA, err := matrix.FrobeniusNorm(a)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}

	qt, err := matrix.Transpose(res.Q)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	gram, err := matrix.Mul(qt, res.Q)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	id, err := matrix.NewIdentity(res.Q.Cols())
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	gdiff, err := matrix.Sub(gram, id)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}
	orth, err := matrix.FrobeniusNorm(gdiff)
	if err != nil {
		return nil, qrErrorf(opVerify, err)
	}

	rel := recon
	if normA > 0 {
		rel = recon / normA
	}
	tri, minDiag := triangularity(res.R)

	return &Report{
		Method:                      res.Method,
		Reconstructed:               prod,
		Gram:                        gram,
		ReconstructionError:         recon,
		RelativeReconstructionError: rel,
		MaxResidual:                 maxRes,
		OrthogonalityError:          orth,
		TriangularityError:          tri,
		MinDiagonal:                 minDiag,
	}, nil
}

// triangularity returns max |R[i,j]| over i > j and min R[i,i].
// NaN entries propagate into both results.
func triangularity(r *matrix.Dense) (below, minDiag float64) {
	rows, cols := r.Shape()
	data := r.RawData()
	minDiag = math.Inf(1)

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols && j <= i; j++ {
			v = data[i*cols+j]
			if j == i {
				if v < minDiag || math.IsNaN(v) {
					minDiag = v
				}
				continue
			}
			if math.Abs(v) > below || math.IsNaN(v) {
				below = math.Abs(v)
			}
		}
	}

	return below, minDiag
}

// Check returns nil when the relative reconstruction error, the
// orthogonality error and the triangularity error are all within tol and
// the diagonal of R is non-negative. Otherwise it returns every violation
// joined, each wrapping ErrVerificationFailed. NaN always fails.
func (r *Report) Check(tol float64) error {
	var errs []error
	fail := func(name string, got float64) {
		errs = append(errs, fmt.Errorf("%w: %s %.3g exceeds %.3g", ErrVerificationFailed, name, got, tol))
	}

	if !(r.RelativeReconstructionError <= tol) {
		fail("reconstruction", r.RelativeReconstructionError)
	}
	if !(r.OrthogonalityError <= tol) {
		fail("orthogonality", r.OrthogonalityError)
	}
	if !(r.TriangularityError <= tol) {
		fail("triangularity", r.TriangularityError)
	}
	if !(r.MinDiagonal >= 0) {
		errs = append(errs, fmt.Errorf("%w: negative diagonal %.3g", ErrVerificationFailed, r.MinDiagonal))
	}

	return errors.Join(errs...)
}
