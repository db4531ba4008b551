// Package metrics exposes Prometheus counters for generator activity and
// runtime memory readings for the run summary.
package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// Collector records generator activity in a private Prometheus registry.
// Each Collector owns its registry, so several may coexist in one process.
type Collector struct {
	registry      *prometheus.Registry
	generators    *prometheus.CounterVec
	terms         *prometheus.CounterVec
	lastIndex     *prometheus.GaugeVec
	runDuration   prometheus.Gauge
	verifications prometheus.Counter
}

// NewCollector creates a Collector with the fibgen metrics and the Go
// runtime collector registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		generators: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibgen_generators_created_total",
			Help: "Number of sequence generators created, per lane.",
		}, []string{"lane"}),
		terms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibgen_terms_total",
			Help: "Number of terms pulled from sequence generators, per lane.",
		}, []string{"lane"}),
		lastIndex: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fibgen_term_index",
			Help: "1-based index of the last term pulled, per lane.",
		}, []string{"lane"}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibgen_run_duration_seconds",
			Help: "Wall time of the last demonstration run.",
		}),
		verifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibgen_terms_verified_total",
			Help: "Number of terms checked against the fast-doubling oracle.",
		}),
	}
	c.registry.MustRegister(
		c.generators,
		c.terms,
		c.lastIndex,
		c.runDuration,
		c.verifications,
		collectors.NewGoCollector(),
	)
	return c
}

// OnGeneratorCreated records a new generator on a 0-based lane.
func (c *Collector) OnGeneratorCreated(lane int) {
	c.generators.WithLabelValues(laneLabel(lane)).Inc()
}

// OnTerm records a term pulled from a 0-based lane at a 1-based index.
func (c *Collector) OnTerm(lane, index int) {
	l := laneLabel(lane)
	c.terms.WithLabelValues(l).Inc()
	c.lastIndex.WithLabelValues(l).Set(float64(index))
}

// OnVerified records a term that matched the oracle.
func (c *Collector) OnVerified() {
	c.verifications.Inc()
}

// ObserveRun records the duration of a completed run.
func (c *Collector) ObserveRun(d time.Duration) {
	c.runDuration.Set(d.Seconds())
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Dump writes every gathered metric family in the Prometheus text format.
func (c *Collector) Dump(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// laneLabel renders a 0-based lane as the 1-based number shown to users.
func laneLabel(lane int) string {
	return strconv.Itoa(lane + 1)
}
