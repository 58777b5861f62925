package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused client limiter is kept before cleanup.
const idleTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting on top of
// golang.org/x/time/rate. Each Limit call gets its own bucket namespace so
// a strict limit on auth routes does not consume the general budget.
type RateLimiter struct {
	clients sync.Map // map[clientKey]*client
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type clientKey struct {
	scope int
	ip    string
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

var scopeSeq struct {
	sync.Mutex
	n int
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows perMinute requests per IP with
// bursts up to burst. A burst below 1 defaults to perMinute.
func (rl *RateLimiter) Limit(perMinute, burst int) Middleware {
	if burst < 1 {
		burst = perMinute
	}
	every := rate.Every(time.Minute / time.Duration(max(perMinute, 1)))
	retryAfter := strconv.Itoa(int(math.Ceil(60.0/float64(max(perMinute, 1)))))

	scopeSeq.Lock()
	scopeSeq.n++
	scope := scopeSeq.n
	scopeSeq.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.client(clientKey{scope: scope, ip: clientIP(r)}, every, burst)
			if !c.limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(key clientKey, every rate.Limit, burst int) *client {
	val, ok := rl.clients.Load(key)
	if !ok {
		val, _ = rl.clients.LoadOrStore(key, &client{limiter: rate.NewLimiter(every, burst)})
	}
	c := val.(*client)
	c.mu.Lock()
	c.lastSeen = rl.now()
	c.mu.Unlock()
	return c
}

// clientIP strips the port from RemoteAddr. Proxy headers are ignored;
// deployments behind a proxy must rewrite RemoteAddr upstream.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.clients.Range(func(key, value any) bool {
		c := value.(*client)
		c.mu.Lock()
		idle := now.Sub(c.lastSeen)
		c.mu.Unlock()
		if idle > idleTTL {
			rl.clients.Delete(key)
		}
		return true
	})
}
