// Package matrix provides the dense linear-algebra primitives used by the
// QR factorizations in package qr.
//
// The matrix package provides:
//
//   - Matrix, a small interface over a two-dimensional float64 grid, and
//     Dense, its row-major implementation with bounds-checked At/Set.
//   - Constructors: Zeros, NewIdentity, NewDenseFromRows, DenseCopy, NewHilbert.
//   - Kernels: Mul, Transpose, Sub, MatVec, InnerProduct, ColumnNorm,
//     FrobeniusNorm, MaxAbs, AllClose, PowerIteration.
//   - Validators shared by kernels and callers (ValidateTall, ValidateMulCompatible, ...).
//
// Every kernel validates shapes up front and returns a sentinel error
// (ErrDimensionMismatch, ErrOutOfRange, ...) instead of computing on
// incompatible operands. Inputs are never mutated; results are freshly
// allocated *Dense values.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	at, _ := matrix.Transpose(a)
//	ata, _ := matrix.Mul(at, a)
package matrix
