// SPDX-License-Identifier: MIT

// Package qr factorizes a real m×n matrix A (m ≥ n) as A = Q·R, with Q
// orthogonal and R upper triangular, and verifies the result.
//
// Two algorithms are provided:
//
//   - GramSchmidt: modified Gram–Schmidt. Produces thin factors (Q is m×n,
//     R is n×n). Each projection is subtracted from the remaining columns as
//     soon as it is known, which keeps the loss of orthogonality
//     proportional to the condition number of A rather than its square.
//   - Givens: plane rotations zeroing one sub-diagonal entry at a time.
//     Produces full factors (Q is m×m, R is m×n) whose orthogonality stays
//     near machine precision regardless of conditioning.
//
// Both return a *Result with the factors and a Diagnostics record. Neither
// modifies its input. Numerical trouble (a nearly dependent column, a
// rotation with nothing to rotate) is reported through Diagnostics and an
// optional zerolog logger, never as an error:
//
//	res, err := qr.Givens(a, qr.WithLogger(log))
//	if err != nil { ... }              // shape problems only
//	rep, _ := qr.Verify(a, res)
//	if err := rep.Check(1e-9); err != nil { ... }
//
// Verify reports ‖A − Q·R‖, ‖Qᵀ·Q − I‖ and the largest entry below R's
// diagonal. For a full-rank A both methods agree on the leading n×n block of
// R up to rounding, since the thin factorization with a positive diagonal
// is unique.
package qr
