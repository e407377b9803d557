// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, matrix multiplication, transpose, matrix-vector
// products, column inner products and norms. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel takes a *Dense fast path over the flat buffer and falls back
//     to At/Set with the same loop order for other implementations.
//   - Norm reductions over contiguous buffers delegate to gonum/floats.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial value for dot-product style accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opMatVec        = "MatVec"
	opInnerProduct  = "InnerProduct"
	opColumnNorm    = "ColumnNorm"
	opFrobeniusNorm = "FrobeniusNorm"
	opMaxAbs        = "MaxAbs"
	opAllClose      = "AllClose"
	opPower         = "PowerIteration"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Shapes are always checked: a mismatch is an error, never garbage output.
//   - Non-finite operands propagate into C (no policy check on the result).
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// InnerProduct returns Σᵢ m[i,j]·m[i,k], the dot product of columns j and k.
// Implementation:
//   - Stage 1: validate m non-nil and both column indices in range.
//   - Stage 2: strided walk down the two columns (fast path) or At fallback.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r), Space O(1).
func InnerProduct(m Matrix, j, k int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opInnerProduct, err)
	}
	if err := ValidateColumn(m, j); err != nil {
		return 0, matrixErrorf(opInnerProduct, err)
	}
	if err := ValidateColumn(m, k); err != nil {
		return 0, matrixErrorf(opInnerProduct, err)
	}

	if d, ok := m.(*Dense); ok {
		return columnDot(d.data, d.r, d.c, j, k), nil
	}

	var (
		i      int
		vj, vk float64
		err    error
		sum    = ZeroSum
	)
	for i = 0; i < m.Rows(); i++ {
		if vj, err = m.At(i, j); err != nil {
			return 0, matrixErrorf(opInnerProduct, err)
		}
		if vk, err = m.At(i, k); err != nil {
			return 0, matrixErrorf(opInnerProduct, err)
		}
		sum += vj * vk
	}

	return sum, nil
}

// ColumnNorm returns the Euclidean norm of column j: sqrt(InnerProduct(m, j, j)).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func ColumnNorm(m Matrix, j int) (float64, error) {
	ip, err := InnerProduct(m, j, j)
	if err != nil {
		return 0, matrixErrorf(opColumnNorm, err)
	}

	return math.Sqrt(ip), nil
}

// columnDot is the unchecked strided kernel behind InnerProduct.
// data is row-major with the given row count and stride (column count).
func columnDot(data []float64, rows, stride, j, k int) float64 {
	var i int
	sum := ZeroSum
	for i = 0; i < rows; i++ {
		sum += data[i*stride+j] * data[i*stride+k]
	}

	return sum
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// *Dense delegates to floats.Norm over the flat buffer; other
// implementations are copied first.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}

	return floats.Norm(d.data, 2), nil
}

// MaxAbs returns max |m[i,j]| (the entry-wise infinity norm).
// A NaN anywhere in m yields NaN.
//
// Errors:
//   - ErrNilMatrix.
func MaxAbs(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	if floats.HasNaN(d.data) {
		return math.NaN(), nil
	}

	return floats.Norm(d.data, math.Inf(1)), nil
}

// AllClose reports whether a and b have the same shape and every entry
// differs by at most eps (WithEpsilon, default DefaultEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	diff, err := Sub(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	d := diff.(*Dense)

	// NaN compares false, so a non-finite difference is never "close".
	return floats.Norm(d.data, math.Inf(1)) <= o.eps, nil
}

// PowerIteration estimates the dominant eigenvalue magnitude of a square
// matrix by repeated multiplication, rescaling the iterate by its largest
// absolute entry after every step.
// Implementation:
//   - Stage 1: validate square m, len(x0) == n, iters > 0.
//   - Stage 2: y = m·x; mu = max|y|; x = y/mu; repeat iters times.
//
// Behavior highlights:
//   - iters counts matrix-vector products exactly; zero products yield no
//     estimate, so iters must be positive.
//   - x0 is not mutated; the returned vector is the last normalized iterate.
//   - If an iterate collapses to zero, mu = 0 and the zero vector is returned.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (x0 length),
//     ErrBadShape (iters <= 0).
//
// Complexity:
//   - Time O(iters*n²), Space O(n).
func PowerIteration(m Matrix, x0 []float64, iters int) (float64, []float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, nil, matrixErrorf(opPower, err)
	}
	if err := ValidateVecLen(x0, m.Cols()); err != nil {
		return 0, nil, matrixErrorf(opPower, err)
	}
	if iters <= 0 {
		return 0, nil, matrixErrorf(opPower, ErrBadShape)
	}

	x := make([]float64, len(x0))
	copy(x, x0)
	var (
		mu  float64
		y   []float64
		err error
		it  int
	)
	for it = 0; it < iters; it++ {
		if y, err = MatVec(m, x); err != nil {
			return 0, nil, matrixErrorf(opPower, err)
		}
		mu = floats.Norm(y, math.Inf(1))
		if mu == 0 {
			return 0, y, nil
		}
		floats.Scale(1/mu, y)
		x = y
	}

	return mu, x, nil
}

// asDense returns m itself when it is a *Dense, otherwise a copy.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return DenseCopy(m)
}
