// Package metrics recolecta y expone métricas Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector registra las métricas del workflow de adopciones y del
// servidor HTTP sobre un registry inyectado.
type Collector struct {
	adoptionsCompleted prometheus.Counter
	adoptionsRejected  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		adoptionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petadopt_adoptions_completed_total",
			Help: "Adopciones completadas (las tres escrituras ok).",
		}),
		adoptionsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petadopt_adoptions_rejected_total",
			Help: "Adopciones rechazadas, por motivo de precondición.",
		}, []string{"reason"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petadopt_http_request_duration_seconds",
			Help:    "Duración de requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}

	reg.MustRegister(
		c.adoptionsCompleted,
		c.adoptionsRejected,
		c.httpDuration,
	)

	return c
}

// AdoptionCompleted implementa adoptions.Metrics.
func (c *Collector) AdoptionCompleted() {
	c.adoptionsCompleted.Inc()
}

// AdoptionRejected implementa adoptions.Metrics.
func (c *Collector) AdoptionRejected(reason string) {
	c.adoptionsRejected.WithLabelValues(reason).Inc()
}

// ObserveHTTP registra la duración de un request terminado.
func (c *Collector) ObserveHTTP(method string, status int, d time.Duration) {
	c.httpDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}
