package auth

import (
	"context"
	"fmt"
	"log"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"Atelier/internal/config"
	"Atelier/internal/httpx"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

func (i *IPRateLimiter) Allow(_ context.Context, ip string) (bool, error) {
	return i.getLimiter(ip).Allow(), nil
}

// counter is the part of the redis client the fixed window needs.
type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLimiter counts requests per key in fixed windows shared by every
// gateway instance.
type RedisLimiter struct {
	client counter
	prefix string
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client counter, prefix string, limit int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + "ratelimit:" + key
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	if n > l.limit {
		// a key without a TTL would never reset
		if err := l.ensureExpiry(ctx, k); err != nil {
			return false, err
		}
	}
	return n <= l.limit, nil
}

func (l *RedisLimiter) ensureExpiry(ctx context.Context, k string) error {
	ttl, err := l.client.TTL(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("ttl %s: %w", k, err)
	}
	if ttl != -1 {
		return nil
	}
	if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
		return fmt.Errorf("expire %s: %w", k, err)
	}
	return nil
}

// NewLimiter prefers a reachable Redis and falls back to in-memory limits.
// The returned close func releases the Redis connection, if any.
func NewLimiter(ctx context.Context, redisCfg config.RedisConfig, rl config.RateConfig) (Limiter, func() error) {
	memory := NewIPRateLimiter(rate.Limit(rl.RPS), rl.Burst)
	noop := func() error { return nil }
	if redisCfg.URL == "" {
		return memory, noop
	}
	opts, err := redis.ParseURL(redisCfg.URL)
	if err != nil {
		log.Printf("[auth] bad REDIS_URL, falling back to in-memory limits: %v", err)
		return memory, noop
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[auth] redis unavailable, falling back to in-memory limits: %v", err)
		client.Close()
		return memory, noop
	}
	limit := int64(math.Max(float64(rl.Burst), math.Ceil(rl.RPS)))
	return NewRedisLimiter(client, redisCfg.Prefix, limit, time.Second), client.Close
}

// LimitMiddleware rejects clients over their budget with 429. Limiter
// errors let the request through.
func LimitMiddleware(l Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := l.Allow(r.Context(), clientIP(r))
			if err != nil {
				log.Printf("[auth] rate limiter error: %v", err)
				ok = true
			}
			if !ok {
				httpx.WriteError(w, http.StatusTooManyRequests, "rate_limited", "Too Many Requests. Try again later.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
