// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/gentlelibrary/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Limiter provides per-key rate limiting using a fixed window.
// It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // max requests per window
	duration time.Duration // window duration
	swept    time.Time     // last time expired windows were removed

	now func() time.Time
}

type window struct {
	count     int
	expiresAt time.Time
}

// New returns a limiter admitting limit requests per key in each window of
// the given duration.
func New(limit int, duration time.Duration) *Limiter {
	return &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		now:      time.Now,
	}
}

// Allow reports whether a request for key fits in its current window.
func (l *Limiter) Allow(key string) bool {
	ok, _ := l.Take(key)
	return ok
}

// Take counts a request for key. When the window is full it returns false
// and how long until the window resets; the rejected request is not counted.
func (l *Limiter) Take(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true, 0
	}
	if w.count >= l.limit {
		return false, w.expiresAt.Sub(now)
	}
	w.count++
	return true, 0
}

// sweep drops expired windows at most once per two window lengths, so
// memory stays bounded without a background goroutine. l.mu must be held.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.swept) < 2*l.duration {
		return
	}
	for key, w := range l.windows {
		if now.After(w.expiresAt) {
			delete(l.windows, key)
		}
	}
	l.swept = now
}

// ClientIP keys requests by client address. The first X-Forwarded-For
// entry wins, then X-Real-IP, then the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// Middleware rejects requests over the limit with 429 and a JSON error.
// A nil limiter lets every request through.
func Middleware(l *Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			ok, wait := l.Take(ip)
			if !ok {
				secs := max(int(wait.Round(time.Second)/time.Second), 1)
				logger.Debug("rate limited", zap.String("ip", ip), zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				jsonutil.Error(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
