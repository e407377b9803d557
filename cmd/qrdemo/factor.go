// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qrkit/internal/config"
	"github.com/katalvlaran/qrkit/internal/metrics"
	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
)

type factorOptions struct {
	configPath  string
	method      string
	hilbert     int
	tolerance   float64
	metricsFile string
	strict      bool
	showQ       bool
}

func newFactorCmd(a *app) *cobra.Command {
	var o factorOptions

	cmd := &cobra.Command{
		Use:   "factor",
		Short: "Factorize a matrix and verify the result",
		Long: `Factorize the configured matrix (the built-in 4×3 example by default)
with one or both methods and print R, optionally Q, and the verification
report.

Example usage:
  qrdemo factor                          # both methods on the example
  qrdemo factor --method givens --show-q # full orthogonal factor
  qrdemo factor --hilbert 10 --strict    # exit 1 if a method exceeds --tol
  qrdemo factor --config qrkit.yaml --metrics-file /var/lib/node_exporter/qrkit.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			a.applyConfigLevel(cfg.Level())

			return a.runFactor(cmd, cfg, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Path to a YAML configuration file")
	f.StringVar(&o.method, "method", config.DefaultMethod, "Method: gs, givens or both")
	f.IntVar(&o.hilbert, "hilbert", 0, "Factorize the n×n Hilbert matrix instead")
	f.Float64Var(&o.tolerance, "tol", config.DefaultTolerance, "Verification tolerance")
	f.StringVar(&o.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	f.BoolVar(&o.strict, "strict", false, "Fail when verification exceeds the tolerance")
	f.BoolVar(&o.showQ, "show-q", false, "Print the Q factor")

	return cmd
}

// resolve loads the configuration and lets explicitly set flags override it.
func (o *factorOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("method") {
		cfg.Method = o.method
	}
	if f.Changed("hilbert") {
		cfg.Hilbert = o.hilbert
		// --hilbert 0 over a Hilbert-only config falls back to the example
		if cfg.Hilbert == 0 && len(cfg.Matrix) == 0 {
			cfg.Matrix = config.ExampleMatrix()
		}
	}
	if f.Changed("tol") {
		cfg.Tolerance = o.tolerance
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (a *app) runFactor(cmd *cobra.Command, cfg *config.Config, o factorOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	input, err := cfg.Input()
	if err != nil {
		return err
	}
	methods, err := cfg.Methods()
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()
	opts := []qr.Option{
		qr.WithLogger(a.logger),
		qr.WithSingularTolerance(cfg.SingularTol),
	}

	rows, cols := input.Shape()
	a.logger.Info().Int("rows", rows).Int("cols", cols).Int("methods", len(methods)).Msg("factorizing")
	fmt.Fprintf(out, "A (%dx%d):\n%s", rows, cols, input)

	var failures []error
	for _, m := range methods {
		if err = ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		res, err := qr.Factor(m, input, opts...)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		rep, err := qr.Verify(input, res)
		if err != nil {
			return err
		}
		checkErr := rep.Check(cfg.Tolerance)
		rec.Observe(res, rep, elapsed, checkErr == nil)

		a.logger.Debug().
			Str("method", m.String()).
			Dur("elapsed", elapsed).
			Float64("reconstruction", rep.RelativeReconstructionError).
			Float64("orthogonality", rep.OrthogonalityError).
			Msg("factorized")

		printResult(out, res, rep, checkErr, o.showQ)
		if checkErr != nil {
			a.logger.Warn().Err(checkErr).Str("method", m.String()).Msg("verification failed")
			failures = append(failures, fmt.Errorf("%s: %w", m, checkErr))
		}
	}

	if cfg.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		a.logger.Info().Str("path", cfg.MetricsFile).Msg("metrics written")
	}

	if o.strict && len(failures) > 0 {
		return errors.Join(failures...)
	}

	return nil
}

func printResult(w io.Writer, res *qr.Result, rep *qr.Report, checkErr error, showQ bool) {
	fmt.Fprintf(w, "\n== %s ==\n", res.Method)
	if showQ {
		printFactor(w, "Q", res.Q)
	}
	printFactor(w, "R", res.R)

	fmt.Fprintf(w, "reconstruction error: %.3e (relative %.3e)\n",
		rep.ReconstructionError, rep.RelativeReconstructionError)
	fmt.Fprintf(w, "max residual:         %.3e\n", rep.MaxResidual)
	fmt.Fprintf(w, "orthogonality error:  %.3e\n", rep.OrthogonalityError)
	fmt.Fprintf(w, "triangularity error:  %.3e\n", rep.TriangularityError)
	if res.Method == qr.GivensMethod {
		d := res.Diagnostics
		fmt.Fprintf(w, "rotations: %d applied, %d skipped, %d degenerate\n", d.Rotations, d.Skipped, d.Degenerate)
	}
	for _, warn := range res.Diagnostics.Warnings() {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}

	if checkErr != nil {
		fmt.Fprintf(w, "verification: FAILED\n%v\n", checkErr)
		return
	}
	fmt.Fprintln(w, "verification: ok")
}

func printFactor(w io.Writer, name string, m *matrix.Dense) {
	r, c := m.Shape()
	fmt.Fprintf(w, "%s (%dx%d):\n%s", name, r, c, m)
}
