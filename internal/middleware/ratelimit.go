package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiter guarda el limiter por cliente y su último acceso para
// poder limpiar entradas viejas.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limita requests por IP con un token bucket por cliente.
type RateLimiter struct {
	rate  rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

// NewRateLimiter crea un limiter de perMinute requests por minuto por IP.
// El burst es perMinute completo (permite ráfagas cortas).
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &RateLimiter{
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
		limiters: make(map[string]*clientLimiter),
	}
}

// Middleware devuelve el middleware HTTP. Usa RemoteAddr (con RealIP de
// chi adelante, ya viene resuelta la IP del cliente).
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(r.RemoteAddr) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"status": "error",
					"error":  "too many requests",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	cl, ok := rl.limiters[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[client] = cl

		// Limpieza perezosa: sin goroutine de fondo, se barren entradas
		// viejas cuando aparece un cliente nuevo.
		for k, v := range rl.limiters {
			if now.Sub(v.lastAccess) > 10*time.Minute && k != client {
				delete(rl.limiters, k)
			}
		}
	}
	cl.lastAccess = now

	return cl.limiter.Allow()
}
