package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Atelier/internal/config"

	"github.com/redis/go-redis/v9"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func call(h http.Handler, header string) int {
	req := httptest.NewRequest(http.MethodPost, "/plotly/visualize", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestGuardNoneLetsEverythingThrough(t *testing.T) {
	g := NewGuard(config.AuthConfig{Type: config.AuthNone})
	if code := call(g.Middleware(okHandler), ""); code != http.StatusNoContent {
		t.Errorf("status = %d", code)
	}
}

func TestGuardServiceHTTP(t *testing.T) {
	hash, err := HashToken("hashed-secret")
	if err != nil {
		t.Fatal(err)
	}
	key := "jwt-key"
	g := NewGuard(config.AuthConfig{Type: config.AuthServiceHTTP, BearerToken: "plain", TokenHash: hash, JWTKey: key})

	valid, err := IssueToken([]byte(key), "ci", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, _ := IssueToken([]byte(key), "ci", -time.Hour)
	foreign, _ := IssueToken([]byte("other"), "ci", time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"plain token", "Bearer plain", http.StatusNoContent},
		{"lowercase scheme", "bearer plain", http.StatusNoContent},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"basic scheme", "Basic plain", http.StatusUnauthorized},
		{"hashed token", "Bearer hashed-secret", http.StatusNoContent},
		{"jwt", "Bearer " + valid, http.StatusNoContent},
		{"expired jwt", "Bearer " + expired, http.StatusUnauthorized},
		{"foreign jwt", "Bearer " + foreign, http.StatusUnauthorized},
	}
	h := g.Middleware(okHandler)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := call(h, tt.header); code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestGuardCachesHashedToken(t *testing.T) {
	hash, err := HashToken("hashed-secret")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGuard(config.AuthConfig{Type: config.AuthServiceHTTP, TokenHash: hash})

	if g.Valid("wrong") {
		t.Fatal("wrong token accepted")
	}
	if !g.Valid("hashed-secret") {
		t.Fatal("hashed token rejected")
	}

	// a broken hash shows whether the second check went back to bcrypt
	g.TokenHash = "not-a-bcrypt-hash"
	if !g.Valid("hashed-secret") {
		t.Error("verified token should be served from the cache")
	}
	if g.Valid("wrong") {
		t.Error("failed tokens must not be cached")
	}
}

func TestIssueTokenNeedsKey(t *testing.T) {
	if _, err := IssueToken(nil, "x", time.Minute); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestIPRateLimiter(t *testing.T) {
	h := LimitMiddleware(NewIPRateLimiter(0, 2))(okHandler)
	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, call(h, ""))
	}
	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
	// expireFailures makes the next Expire calls fail.
	expireFailures int
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	if f.expireFailures > 0 {
		f.expireFailures--
		return redis.NewBoolResult(false, errors.New("i/o timeout"))
	}
	f.expires[key] = d
	return redis.NewBoolResult(true, nil)
}

// TTL follows redis: -2 for a missing key, -1 for a key without expiry.
func (f *fakeCounter) TTL(_ context.Context, key string) *redis.DurationCmd {
	if _, ok := f.counts[key]; !ok {
		return redis.NewDurationResult(-2, nil)
	}
	if d, ok := f.expires[key]; ok {
		return redis.NewDurationResult(d, nil)
	}
	return redis.NewDurationResult(-1, nil)
}

func TestRedisLimiterRepairsMissingExpiry(t *testing.T) {
	fc := &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}, expireFailures: 1}
	l := NewRedisLimiter(fc, "", 2, time.Second)
	key := "ratelimit:10.0.0.2"

	if _, err := l.Allow(context.Background(), "10.0.0.2"); err == nil {
		t.Fatal("first call should report the failed expire")
	}
	for i := 0; i < 3; i++ {
		l.Allow(context.Background(), "10.0.0.2")
	}
	if fc.expires[key] != time.Second {
		t.Fatalf("expiry should be restored once the client is over the limit, expires = %v", fc.expires)
	}

	// the window passing in redis drops the key
	delete(fc.counts, key)
	delete(fc.expires, key)
	if ok, err := l.Allow(context.Background(), "10.0.0.2"); err != nil || !ok {
		t.Errorf("after the window: allow = %v, %v", ok, err)
	}
}

func TestRedisLimiter(t *testing.T) {
	fc := &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
	l := NewRedisLimiter(fc, "monkeys:", 2, time.Second)

	for i, want := range []bool{true, true, false} {
		got, err := l.Allow(context.Background(), "10.0.0.1")
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("call %d: allow = %v, want %v", i, got, want)
		}
	}
	if fc.expires["monkeys:ratelimit:10.0.0.1"] != time.Second {
		t.Errorf("expire not set: %v", fc.expires)
	}
}

func TestLimiterErrorFailsOpen(t *testing.T) {
	fc := &fakeCounter{err: errors.New("connection refused")}
	h := LimitMiddleware(NewRedisLimiter(fc, "", 1, time.Second))(okHandler)
	if code := call(h, ""); code != http.StatusNoContent {
		t.Errorf("status = %d", code)
	}
}

func TestNewLimiterWithoutRedis(t *testing.T) {
	l, closeFn := NewLimiter(context.Background(), config.RedisConfig{}, config.RateConfig{RPS: 1, Burst: 1})
	defer closeFn()
	if _, isMemory := l.(*IPRateLimiter); !isMemory {
		t.Errorf("limiter = %T", l)
	}
}
