package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token bucket per client IP and forgets idle ones after ttl.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

func NewVisitors(rps int, burst int, ttl time.Duration) *Visitors {
	return &Visitors{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}
}

func (v *Visitors) Allow(ip string, now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	vis, ok := v.visitors[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.visitors[ip] = vis
	}
	vis.lastSeen = now

	return vis.limiter.AllowN(now, 1)
}

// Cleanup drops visitors not seen within ttl of now.
func (v *Visitors) Cleanup(now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for ip, vis := range v.visitors {
		if now.Sub(vis.lastSeen) > v.ttl {
			delete(v.visitors, ip)
		}
	}
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Limit returns a middleware allowing rps requests per second per client IP
// with the given burst. A non-positive rps disables limiting.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	visitors := NewVisitors(rps, burst, ttl)

	go func() {
		ticker := time.NewTicker(ttl)
		defer ticker.Stop()
		for now := range ticker.C {
			visitors.Cleanup(now)
		}
	}()

	return func(c *gin.Context) {
		if !visitors.Allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":       false,
				"error_message": "too many requests",
			})
			return
		}
		c.Next()
	}
}
