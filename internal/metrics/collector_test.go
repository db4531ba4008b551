package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewCollector(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	if c == nil || c.Registry() == nil {
		t.Fatal("NewCollector returned an incomplete collector")
	}
}

func TestCollector_CountsPerLane(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.OnGeneratorCreated(0)
	c.OnGeneratorCreated(1)
	for i := 1; i <= 12; i++ {
		c.OnTerm(0, i)
	}
	for i := 1; i <= 10; i++ {
		c.OnTerm(1, i)
	}

	if got := testutil.ToFloat64(c.terms.WithLabelValues("1")); got != 12 {
		t.Errorf("lane 1 terms = %v, want 12", got)
	}
	if got := testutil.ToFloat64(c.terms.WithLabelValues("2")); got != 10 {
		t.Errorf("lane 2 terms = %v, want 10", got)
	}
	if got := testutil.ToFloat64(c.lastIndex.WithLabelValues("1")); got != 12 {
		t.Errorf("lane 1 last index = %v, want 12", got)
	}
	if got := testutil.ToFloat64(c.generators.WithLabelValues("2")); got != 1 {
		t.Errorf("lane 2 generators = %v, want 1", got)
	}
}

func TestCollector_Dump(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.OnGeneratorCreated(0)
	c.OnTerm(0, 1)
	c.OnVerified()
	c.ObserveRun(250 * time.Millisecond)

	var buf bytes.Buffer
	if err := c.Dump(&buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	body := buf.String()

	for _, want := range []string{
		`fibgen_terms_total{lane="1"} 1`,
		`fibgen_generators_created_total{lane="1"} 1`,
		"fibgen_terms_verified_total 1",
		"fibgen_run_duration_seconds 0.25",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dump should contain %q", want)
		}
	}
}

func TestCollectors_AreIsolated(t *testing.T) {
	t.Parallel()
	a, b := NewCollector(), NewCollector()
	a.OnTerm(0, 1)

	if got := testutil.ToFloat64(b.terms.WithLabelValues("1")); got != 0 {
		t.Errorf("second collector saw %v terms, want 0", got)
	}
}
