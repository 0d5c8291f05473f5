package middlewarectx

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/middleware"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/http/response"
	"github.com/magabrotheeeer/tutor-marketplace/internal/metrics"
)

// Limiter hands out one token bucket per client address. Buckets idle for
// longer than the configured TTL are dropped on the next sweep.
type Limiter struct {
	mu        sync.Mutex
	limiters  map[string]*bucket
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewLimiter builds a Limiter from the rate limit settings.
func NewLimiter(cfg config.RateLimit) *Limiter {
	idle := cfg.IdleTTL
	if idle <= 0 {
		idle = time.Minute
	}
	return &Limiter{
		limiters:  make(map[string]*bucket),
		rps:       rate.Limit(cfg.LoginRPS),
		burst:     cfg.LoginBurst,
		idleTTL:   idle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow reports whether the client at addr may proceed now.
func (l *Limiter) Allow(addr string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}
	b, ok := l.limiters[addr]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[addr] = b
	}
	b.lastSeen = now
	l.mu.Unlock()
	return b.lim.AllowN(now, 1)
}

// sweep drops idle buckets. l.mu must be held.
func (l *Limiter) sweep(now time.Time) {
	for addr, b := range l.limiters {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.limiters, addr)
		}
	}
	l.lastSweep = now
}

// RateLimitMiddleware answers 429 once a client exceeds its budget.
func RateLimitMiddleware(log *slog.Logger, l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := clientAddr(r)
			if !l.Allow(addr) {
				metrics.RateLimited.Inc()
				log.Warn("too many requests",
					slog.String("client", addr),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				response.JSON(w, r, http.StatusTooManyRequests, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientAddr strips the port from RemoteAddr.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
