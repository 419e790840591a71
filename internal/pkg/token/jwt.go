// Package token issues and verifies the signed bearer tokens used by the API.
// Tokens are HS256 JWTs carrying only registered claims: sub (user email),
// iat, and exp. Validity is stateless — signature plus expiry, nothing server
// side.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformed        = errors.New("token malformed")
)

// Service signs and verifies bearer tokens with a process-wide secret.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	secret []byte
}

// NewService creates a token service. The secret must be non-empty; the
// caller (config loading) guarantees that before the process starts serving.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue returns a signed token for subject expiring after ttl.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry, returning the embedded subject.
// Failures map to the package sentinels: ErrExpired, ErrInvalidSignature,
// ErrMalformed. A token signed with a non-HS256 method is treated as a
// signature failure.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidSignature
		default:
			return "", ErrMalformed
		}
	}
	if !parsed.Valid {
		return "", ErrInvalidSignature
	}
	return claims.Subject, nil
}
