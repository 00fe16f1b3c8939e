package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_AdoptionCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.AdoptionCompleted()
	c.AdoptionCompleted()
	c.AdoptionRejected("already_adopted")

	if got := testutil.ToFloat64(c.adoptionsCompleted); got != 2 {
		t.Fatalf("expected 2 completed, got %v", got)
	}
	if got := testutil.ToFloat64(c.adoptionsRejected.WithLabelValues("already_adopted")); got != 1 {
		t.Fatalf("expected 1 rejected, got %v", got)
	}
	if got := testutil.ToFloat64(c.adoptionsRejected.WithLabelValues("user_not_found")); got != 0 {
		t.Fatalf("expected 0 rejected for other reason, got %v", got)
	}
}

func TestCollector_HTTPDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTP("POST", 200, 50*time.Millisecond)
	c.ObserveHTTP("POST", 200, 150*time.Millisecond)

	count := testutil.CollectAndCount(c.httpDuration)
	if count != 1 {
		t.Fatalf("expected 1 histogram series, got %d", count)
	}
}

func TestCollector_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metric families")
	}
}
