// SPDX-License-Identifier: MIT

// Package matrix - constructors for common dense shapes.
//
// Purpose:
//   - Zeros / NewIdentity: neutral elements used by factorizations.
//   - NewDenseFromRows: ingest [][]float64 literals and decoded config data.
//   - DenseCopy: detach any Matrix into an owned *Dense working copy.
//   - NewHilbert: the classic ill-conditioned test matrix.
//
// All constructors validate shape first and never return partially built values.

package matrix

import "fmt"

const (
	ctxFromRows = "NewDenseFromRows"
	ctxCopy     = "DenseCopy"
	ctxHilbert  = "NewHilbert"
	ctxIdentity = "NewIdentity"
)

// Zeros returns a rows×cols matrix filled with 0.0.
// It is NewDense under the name used by numerical code.
//
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity (main diagonal = 1, else 0).
//
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: Time O(n²), Space O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, err)
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewDenseFromRows builds a Dense from a slice of equally long rows.
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and jagged rows (ErrDimensionMismatch).
//   - Stage 2: allocate with the requested numeric policy.
//   - Stage 3: copy row by row, rejecting NaN/±Inf when the policy is on.
//
// Behavior highlights:
//   - The input slices are copied; later mutation of rows does not leak in.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	var i, j int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// DenseCopy returns an independent *Dense holding the values of m.
// Behavior highlights:
//   - *Dense input: flat copy, policy preserved.
//   - Other implementations: read via At, written directly (no policy check),
//     so a copy never fails on values the source already holds.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty source), errors from At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.copyDense(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCopy, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxCopy, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// NewHilbert returns the n×n Hilbert matrix H[i,j] = 1/(i+j+1).
// Hilbert matrices are symmetric positive definite and notoriously
// ill-conditioned, which makes them a good stress input for
// orthogonalization schemes.
//
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: Time O(n²), Space O(n²).
func NewHilbert(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxHilbert, n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.data[i*n+j] = 1.0 / float64(i+j+1)
		}
	}

	return m, nil
}
