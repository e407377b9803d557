// SPDX-License-Identifier: MIT

// Package metrics records factorization runs as Prometheus metrics and
// writes them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/qrkit/qr"
)

// Recorder holds the metrics of one qrdemo invocation in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	Duration       *prometheus.HistogramVec
	Reconstruction *prometheus.GaugeVec
	Orthogonality  *prometheus.GaugeVec
	Triangularity  *prometheus.GaugeVec
	NearSingular   *prometheus.CounterVec
	Eliminations   *prometheus.CounterVec
	Failures       *prometheus.CounterVec
}

// NewRecorder registers every qrkit metric on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qrkit_factor_duration_seconds",
				Help:    "Wall time of one factorization in seconds",
				Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1, 10},
			},
			[]string{"method"},
		),

		Reconstruction: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "qrkit_reconstruction_error",
				Help: "Relative Frobenius norm of A - QR",
			},
			[]string{"method"},
		),

		Orthogonality: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "qrkit_orthogonality_error",
				Help: "Frobenius norm of Q^T Q - I",
			},
			[]string{"method"},
		),

		Triangularity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "qrkit_triangularity_error",
				Help: "Largest magnitude below the diagonal of R",
			},
			[]string{"method"},
		),

		NearSingular: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrkit_near_singular_columns_total",
				Help: "Columns reported as nearly linearly dependent",
			},
			[]string{"method"},
		),

		Eliminations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrkit_givens_eliminations_total",
				Help: "Givens eliminations by outcome",
			},
			[]string{"outcome"},
		),

		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrkit_verification_failures_total",
				Help: "Factorizations whose verification exceeded the tolerance",
			},
			[]string{"method"},
		),
	}

	r.registry.MustRegister(
		r.Duration,
		r.Reconstruction,
		r.Orthogonality,
		r.Triangularity,
		r.NearSingular,
		r.Eliminations,
		r.Failures,
	)

	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one factorization, its verification report and whether
// the report passed Check.
func (r *Recorder) Observe(res *qr.Result, rep *qr.Report, elapsed time.Duration, passed bool) {
	method := res.Method.String()

	r.Duration.WithLabelValues(method).Observe(elapsed.Seconds())
	r.NearSingular.WithLabelValues(method).Add(float64(len(res.Diagnostics.NearSingular)))

	if res.Method == qr.GivensMethod {
		d := res.Diagnostics
		r.Eliminations.WithLabelValues("applied").Add(float64(d.Rotations))
		r.Eliminations.WithLabelValues("skipped").Add(float64(d.Skipped))
		r.Eliminations.WithLabelValues("degenerate").Add(float64(d.Degenerate))
	}

	if rep != nil {
		r.Reconstruction.WithLabelValues(method).Set(rep.RelativeReconstructionError)
		r.Orthogonality.WithLabelValues(method).Set(rep.OrthogonalityError)
		r.Triangularity.WithLabelValues(method).Set(rep.TriangularityError)
	}
	if !passed {
		r.Failures.WithLabelValues(method).Inc()
	}
}

// WriteTextfile writes the registry to path atomically, for pickup by the
// node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
