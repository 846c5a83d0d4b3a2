package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig sets the sustained rate and burst allowance applied per
// client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{RequestsPerSecond: 100, BurstSize: 200}
}

// ipBucket is a token bucket refilled lazily on each take. Buckets for
// idle clients are dropped once they have been full for bucketIdleTTL.
type ipBucket struct {
	tokens float64
	seen   time.Time
}

const bucketIdleTTL = 10 * time.Minute

type rateLimiter struct {
	mu      sync.Mutex
	byIP    map[string]*ipBucket
	rate    float64
	burst   float64
	lastGC  time.Time
	nowFunc func() time.Time
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		byIP:    make(map[string]*ipBucket),
		rate:    cfg.RequestsPerSecond,
		burst:   float64(cfg.BurstSize),
		nowFunc: time.Now,
	}
}

// take consumes one token for ip. The second return value is the suggested
// Retry-After in seconds when the bucket is empty.
func (rl *rateLimiter) take(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.nowFunc()
	rl.sweep(now)

	b, ok := rl.byIP[ip]
	if !ok {
		b = &ipBucket{tokens: rl.burst}
		rl.byIP[ip] = b
	} else {
		b.tokens = math.Min(rl.burst, b.tokens+now.Sub(b.seen).Seconds()*rl.rate)
	}
	b.seen = now

	if b.tokens < 1 {
		wait := 1
		if rl.rate > 0 {
			wait = int(math.Ceil((1 - b.tokens) / rl.rate))
		}
		return false, wait
	}
	b.tokens--
	return true, 0
}

func (rl *rateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastGC) < bucketIdleTTL {
		return
	}
	rl.lastGC = now
	for ip, b := range rl.byIP {
		if now.Sub(b.seen) > bucketIdleTTL {
			delete(rl.byIP, ip)
		}
	}
}

// RateLimit rejects requests beyond the configured per-IP rate with 429.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	rl := newRateLimiter(cfg)
	limitHeader := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', -1, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := rl.take(c.RealIP())
			c.Response().Header().Set("X-RateLimit-Limit", limitHeader)
			if !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
