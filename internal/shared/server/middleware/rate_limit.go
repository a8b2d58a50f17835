package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimit applies a per-identity token bucket. The analysis endpoints
// are CPU bound, so bursts are kept small.
func RateLimit(ratePerMinute float64, burst float64) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		buckets = make(map[string]*tokenBucket)
	)
	refillPerSecond := ratePerMinute / 60.0

	return func(c *gin.Context) {
		key := UserIDFromContext(c)
		if key == "" {
			key = c.ClientIP()
		}

		mu.Lock()
		b, ok := buckets[key]
		now := time.Now()
		if !ok {
			b = &tokenBucket{tokens: burst, lastSeen: now}
			buckets[key] = b
		} else {
			elapsed := now.Sub(b.lastSeen).Seconds()
			b.tokens += elapsed * refillPerSecond
			if b.tokens > burst {
				b.tokens = burst
			}
			b.lastSeen = now
		}
		allowed := b.tokens >= 1
		if allowed {
			b.tokens--
		}
		mu.Unlock()

		if !allowed {
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "too many requests, slow down", nil)
			return
		}
		c.Next()
	}
}
