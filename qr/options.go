// SPDX-License-Identifier: MIT

package qr

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultSingularTolerance is the column-norm threshold below which
// Gram–Schmidt reports the column as nearly linearly dependent.
const DefaultSingularTolerance = 1e-13

const panicSingularTolInvalid = "qr: WithSingularTolerance: tol must be finite, non-negative"

// Option configures a factorization call.
type Option func(*options)

type options struct {
	logger      zerolog.Logger
	singularTol float64
}

// WithLogger routes diagnostics (near-singular columns, degenerate
// rotations) to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSingularTolerance overrides DefaultSingularTolerance.
// Panics when tol is negative, NaN or ±Inf.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *options) { o.singularTol = tol }
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger:      zerolog.Nop(),
		singularTol: DefaultSingularTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
