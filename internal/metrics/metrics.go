// Package metrics records palette generation counters on a private
// Prometheus registry and writes them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmylchreest/brandpal/internal/accessibility"
	"github.com/jmylchreest/brandpal/internal/palette"
)

// Recorder implements palette.Observer.
type Recorder struct {
	registry *prometheus.Registry

	palettes   prometheus.Counter
	repairs    *prometheus.CounterVec
	shortfalls *prometheus.CounterVec
	duration   prometheus.Histogram
}

var _ palette.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		palettes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "brandpal_palettes_generated_total",
			Help: "Total palettes generated",
		}),
		repairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandpal_repairs_total",
			Help: "Total colour corrections by kind and role",
		}, []string{"kind", "role"}),
		shortfalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandpal_audit_shortfalls_total",
			Help: "Roles still below WCAG AA against the background after repair",
		}, []string{"role"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "brandpal_generation_seconds",
			Help:    "Time spent generating one response",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
	r.registry.MustRegister(r.palettes, r.repairs, r.shortfalls, r.duration)
	return r
}

// ObserveRepair counts one correction.
func (r *Recorder) ObserveRepair(rep accessibility.Repair) {
	r.repairs.WithLabelValues(string(rep.Kind), string(rep.Role)).Inc()
}

// ObservePalette counts a palette and any roles it leaves below AA.
func (r *Recorder) ObservePalette(_ palette.Palette, report accessibility.Report) {
	r.palettes.Inc()
	for _, role := range report.Shortfalls() {
		r.shortfalls.WithLabelValues(string(role)).Inc()
	}
}

// ObserveGeneration records how long a Generate call took.
func (r *Recorder) ObserveGeneration(elapsed time.Duration) {
	r.duration.Observe(elapsed.Seconds())
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
