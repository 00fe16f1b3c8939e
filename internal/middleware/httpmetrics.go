package middleware

import (
	"net/http"
	"time"
)

// HTTPObserver es lo que este middleware necesita del collector.
type HTTPObserver interface {
	ObserveHTTP(method string, status int, d time.Duration)
}

// HTTPMetrics registra duración y status de cada request.
func HTTPMetrics(obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			obs.ObserveHTTP(r.Method, rec.status, time.Since(start))
		})
	}
}
