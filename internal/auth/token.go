// internal/auth/token.go
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jason-s-yu/players/internal/models"
)

// DefaultTokenTTL applies when TOKEN_EXPIRE_TIME is unset.
const DefaultTokenTTL = 24 * time.Hour

// TokenService signs and verifies bearer tokens with a process-wide HMAC
// secret. It is the only holder of the secret; callers deal in payloads and
// opaque token strings.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// New builds a TokenService from the environment: JWT_SECRET for the signing
// secret (falls back to a fixed development default if unset) and
// TOKEN_EXPIRE_TIME for the token lifetime ("never" or "0" disables expiry).
func New() *TokenService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "supersecret"
	}
	return NewWithSecret(secret, parseTokenTTL())
}

// NewWithSecret builds a TokenService with an explicit secret and lifetime.
// A ttl of 0 means tokens never expire.
func NewWithSecret(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// parseTokenTTL reads the TOKEN_EXPIRE_TIME env var. Unset => default 24h;
// "never" or "0" => no expiry; otherwise a time.ParseDuration value.
func parseTokenTTL() time.Duration {
	duration := os.Getenv("TOKEN_EXPIRE_TIME")
	switch duration {
	case "":
		return DefaultTokenTTL
	case "never", "0":
		return 0
	}
	d, err := time.ParseDuration(duration)
	if err != nil {
		fmt.Printf("failed to parse token expire time: %v\n", err)
		os.Exit(1)
	}
	return d
}

// Sign produces a signed token encoding the given payload, plus an "exp"
// claim when expiry is enabled.
func (s *TokenService) Sign(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token's signature and expiry and returns its payload.
// Every failure mode (tampered, truncated, expired, signed with a different
// secret, wrong algorithm) surfaces as models.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (map[string]interface{}, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	if !t.Valid {
		return nil, models.ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}

// IssueUserToken signs a token whose subject is the given user id. The user
// id is the canonical owner key for player records.
func (s *TokenService) IssueUserToken(userID string) (string, error) {
	return s.Sign(map[string]interface{}{"sub": userID})
}

// Subject extracts the "sub" claim from a verified payload.
func Subject(claims map[string]interface{}) (string, bool) {
	sub, ok := claims["sub"].(string)
	return sub, ok && sub != ""
}
