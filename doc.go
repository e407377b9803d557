// Package qrkit factorizes dense real matrices as A = Q·R, two ways, and
// checks the answer.
//
// What's inside:
//
//   - matrix/: Matrix interface, row-major Dense storage, validators and
//     the handful of kernels a factorization needs (column inner products,
//     Mul, Transpose, norms, power iteration, Hilbert builder)
//   - qr/: modified Gram–Schmidt (thin Q) and Givens rotations (full
//     Q), Diagnostics instead of console noise, and Verify for
//     ‖A − QR‖, ‖QᵀQ − I‖ and triangularity
//   - cmd/qrdemo: cobra CLI driving both methods with zerolog output,
//     YAML configuration and an optional Prometheus textfile
//
// Why two methods? Gram–Schmidt is the textbook construction and cheap for
// tall thin inputs, but its orthogonality erodes with the condition number.
// Givens rotations cost more and stay orthogonal to machine precision:
//
//	qrdemo factor --hilbert 10
//
// shows ‖QᵀQ − I‖ near 1e-4 for Gram–Schmidt and near 1e-15 for Givens.
//
// Pure Go, no cgo. Straight loops over flat slices; no BLAS.
//
//	go get github.com/katalvlaran/qrkit/qr
package qrkit
