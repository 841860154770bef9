// Package auth guards tool routes with a service bearer token and limits
// request rates per client.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"Atelier/internal/config"
	"Atelier/internal/httpx"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Guard accepts a request when its bearer token equals the configured token,
// matches the bcrypt hash, or is an HS256 JWT signed with the configured key.
type Guard struct {
	Type      string
	Token     string
	TokenHash string
	JWTkey    []byte

	// hashed holds digests of tokens that already matched TokenHash, so the
	// bcrypt cost is paid once per token rather than once per request.
	hashed sync.Map
}

func NewGuard(cfg config.AuthConfig) *Guard {
	g := &Guard{Type: cfg.Type, Token: cfg.BearerToken, TokenHash: cfg.TokenHash}
	if cfg.JWTKey != "" {
		g.JWTkey = []byte(cfg.JWTKey)
	}
	return g
}

func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.Type != config.AuthServiceHTTP {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := bearer(r)
		if !ok || !g.Valid(token) {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) Valid(token string) bool {
	if token == "" {
		return false
	}
	if g.Token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(g.Token)) == 1 {
		return true
	}
	if g.TokenHash != "" && g.matchesHash(token) {
		return true
	}
	if len(g.JWTkey) > 0 && g.isValidJWT(token) {
		return true
	}
	return false
}

func (g *Guard) matchesHash(token string) bool {
	digest := sha256.Sum256([]byte(token))
	if _, ok := g.hashed.Load(digest); ok {
		return true
	}
	if bcrypt.CompareHashAndPassword([]byte(g.TokenHash), []byte(token)) != nil {
		return false
	}
	g.hashed.Store(digest, struct{}{})
	return true
}

func (g *Guard) isValidJWT(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.JWTkey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		log.Printf("[auth] rejected token: %v", err)
		return false
	}
	return token.Valid
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return "", false
	}
	return strings.TrimSpace(h[7:]), true
}

// HashToken returns the bcrypt hash to put in AUTH_TOKEN_HASH.
func HashToken(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	return string(bytes), err
}

// IssueToken signs a service token for subject valid for ttl.
func IssueToken(key []byte, subject string, ttl time.Duration) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("token key is empty")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(key)
}
