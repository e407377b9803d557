// SPDX-License-Identifier: MIT

package matrix

// Test bridge for matrix_test: exposes the options snapshot and the unchecked
// column kernel without widening the production API. Being a _test.go file
// in package matrix, it compiles only with the tests.

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// NewMatrixOptionsSnapshot_TestOnly returns the defaults.
func NewMatrixOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// ColumnDot_TestOnly runs the strided kernel behind InnerProduct.
func ColumnDot_TestOnly(m *Dense, j, k int) float64 {
	return columnDot(m.data, m.r, m.c, j, k)
}
