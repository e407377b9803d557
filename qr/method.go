// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qrkit/matrix"
)

// Method identifies a factorization algorithm.
type Method int

const (
	// GramSchmidtMethod is modified Gram–Schmidt (thin factors).
	GramSchmidtMethod Method = iota
	// GivensMethod is Givens rotations (full factors).
	GivensMethod
)

var methodNames = map[Method]string{
	GramSchmidtMethod: "gram-schmidt",
	GivensMethod:      "givens",
}

// String returns the canonical lower-case name of the method.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a user-facing name to a Method. Accepted spellings are
// case-insensitive: "gram-schmidt", "gs", "mgs" and "givens".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gram-schmidt", "gramschmidt", "gs", "mgs":
		return GramSchmidtMethod, nil
	case "givens":
		return GivensMethod, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Factor dispatches to GramSchmidt or Givens.
func Factor(method Method, a matrix.Matrix, opts ...Option) (*Result, error) {
	switch method {
	case GramSchmidtMethod:
		return GramSchmidt(a, opts...)
	case GivensMethod:
		return Givens(a, opts...)
	default:
		return nil, qrErrorf(opFactor, fmt.Errorf("%w: %v", ErrUnknownMethod, method))
	}
}
