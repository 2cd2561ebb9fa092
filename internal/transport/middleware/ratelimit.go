package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// RateLimiter keeps one token bucket per caller: the signed-in user, or the
// client host for anonymous requests.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that drops buckets idle for longer
// than idleTTL. Call Stop on shutdown.
func NewRateLimiter(idleTTL time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop(idleTTL)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call more
// than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows limit requests per window for each
// caller. Rejected requests get 429 with a Retry-After of the seconds until
// the next token.
func (rl *RateLimiter) Limit(limit int, window time.Duration) Middleware {
	maxTokens := float64(limit)
	refillRate := maxTokens / window.Seconds()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(clientKey(r), maxTokens, refillRate)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// take consumes one token from the bucket for key. When the bucket is empty
// it returns how long until a token is available.
func (rl *RateLimiter) take(key string, maxTokens, refillRate float64) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: maxTokens, maxTokens: maxTokens, refillRate: refillRate, lastRefill: now}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(b.maxTokens, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) cleanupLoop(idleTTL time.Duration) {
	ticker := time.NewTicker(idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(idleTTL)
		}
	}
}

func (rl *RateLimiter) evictIdle(idleTTL time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	evicted := 0
	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > idleTTL {
			delete(rl.buckets, key)
			evicted++
		}
	}
	return evicted
}
