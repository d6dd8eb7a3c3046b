package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter menyimpan token bucket per key (IP atau user id).
// Bucket yang lama tidak dipakai dibuang saat sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*keyedEntry
	r         rate.Limit // request per detik
	b         int        // burst
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type keyedEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters:  make(map[string]*keyedEntry),
		r:         r,
		b:         b,
		idleAfter: 30 * time.Minute,
		now:       time.Now,
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) > k.idleAfter {
		for id, e := range k.limiters {
			if now.Sub(e.lastSeen) > k.idleAfter {
				delete(k.limiters, id)
			}
		}
		k.lastSweep = now
	}

	e, ok := k.limiters[key]
	if !ok {
		e = &keyedEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (k *KeyedRateLimiter) retryAfter() string {
	if k.r <= 0 {
		return "60"
	}
	return strconv.Itoa(int(math.Ceil(1 / float64(k.r))))
}

func (k *KeyedRateLimiter) reject(c *gin.Context) {
	c.Header("Retry-After", k.retryAfter())
	e := apperror.ErrTooManyRequests
	response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
	c.Abort()
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			limiter.reject(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser harus dipasang setelah AuthMiddleware. Request tanpa user_id dilewatkan.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.Allow(userID) {
			limiter.reject(c)
			return
		}
		c.Next()
	}
}
