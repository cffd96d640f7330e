package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleBucketTTL is how long an unused per-IP bucket is kept.
const idleBucketTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting of write requests.
type RateLimiter struct {
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	done    chan struct{}
}

type bucket struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	seen    time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), done: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine and waits for it.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

// LimitWrites returns middleware that allows maxPerMinute non-GET requests
// per client IP. Reads pass through untouched.
func (rl *RateLimiter) LimitWrites(maxPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if !rl.getBucket(c.ClientIP(), maxPerMinute).allow() {
			retryAfter := 60.0 / float64(maxPerMinute)
			c.Header("Retry-After", strconv.Itoa(int(retryAfter)+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) getBucket(key string, maxPerMinute int) *bucket {
	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		limiter: rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60.0), maxPerMinute),
		seen:    time.Now(),
	})
	return val.(*bucket)
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	b.seen = time.Now()
	b.mu.Unlock()
	return b.limiter.Allow()
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.seen)
				b.mu.Unlock()
				if idle > idleBucketTTL {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
