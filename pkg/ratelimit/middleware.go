package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Config controls the middleware. The global bucket bounds total
// throughput; the per-IP limiter bounds each client.
type Config struct {
	GlobalEnabled    bool    `env:"RATELIMIT_GLOBAL_ENABLED" env-default:"true"`
	GlobalCapacity   int     `env:"RATELIMIT_GLOBAL_CAPACITY" env-default:"1000"`
	GlobalRefillRate float64 `env:"RATELIMIT_GLOBAL_REFILL_RATE" env-default:"16.67"`

	PerIPEnabled    bool    `env:"RATELIMIT_PER_IP_ENABLED" env-default:"true"`
	PerIPCapacity   int     `env:"RATELIMIT_PER_IP_CAPACITY" env-default:"100"`
	PerIPRefillRate float64 `env:"RATELIMIT_PER_IP_REFILL_RATE" env-default:"1.67"`
}

// Middleware applies global and per-IP token bucket limits to every
// request passing through it.
type Middleware struct {
	config Config
	global *bucket
	perIP  *Limiter
}

func NewMiddleware(config Config) *Middleware {
	m := &Middleware{
		config: config,
		global: newBucket(config.GlobalCapacity, config.GlobalRefillRate),
		perIP:  NewLimiter(config.PerIPCapacity, config.PerIPRefillRate, time.Hour),
	}

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			m.perIP.Sweep()
		}
	}()

	return m
}

// Handler is the chi middleware entry point.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.config.GlobalEnabled && !m.global.allow() {
			slog.Warn("Global rate limit exceeded", "path", r.URL.Path)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		if m.config.PerIPEnabled {
			ip := clientIP(r)
			if !m.perIP.Allow(ip) {
				slog.Warn("Per-IP rate limit exceeded", "ip", ip, "path", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
