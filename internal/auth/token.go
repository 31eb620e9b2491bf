// Package auth handles password hashing, bearer token issuance and the HTTP
// middleware that scopes requests to an authenticated user.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authentication token required")
)

// TokenManager signs and verifies stateless HS256 session tokens.
// There is no server-side session table and no revocation list: logout is
// client-side token deletion, and a leaked token stays valid until expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// Claims embeds the owning user id in the token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a manager signing with secret, issuing tokens valid
// for ttl (one day in production configuration).
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate issues a signed token embedding userID.
func (m *TokenManager) Generate(userID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the embedded user id.
func (m *TokenManager) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
