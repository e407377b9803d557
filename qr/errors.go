// SPDX-License-Identifier: MIT

package qr

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the input cannot be factorized as
	// given: fewer rows than columns, or a Result whose factors do not match
	// the matrix handed to Verify. errors.Is also matches the underlying
	// matrix sentinel (matrix.ErrDimensionMismatch, matrix.ErrNilMatrix).
	ErrShapeMismatch = errors.New("qr: shape mismatch")

	// ErrUnknownMethod is returned by ParseMethod and Factor for an
	// unrecognized factorization method.
	ErrUnknownMethod = errors.New("qr: unknown method")

	// ErrNilResult is returned by Verify when the Result or one of its
	// factors is nil.
	ErrNilResult = errors.New("qr: nil result")

	// ErrVerificationFailed is returned by Report.Check when a residual
	// exceeds the tolerance. The wrapped message names the property.
	ErrVerificationFailed = errors.New("qr: verification failed")
)

// Operation tags used in error wrapping.
const (
	opGramSchmidt = "GramSchmidt"
	opGivens      = "Givens"
	opVerify      = "Verify"
	opFactor      = "Factor"
	opThin        = "Thin"
)

// qrErrorf wraps err with an operation tag, preserving it for errors.Is.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps a matrix validation failure so that it matches both
// ErrShapeMismatch and the underlying matrix sentinel.
func shapeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrShapeMismatch, err)
}
