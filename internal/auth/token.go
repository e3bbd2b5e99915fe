// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of issued session tokens. Tokens are
// stateless and self-invalidate at expiry; there is no server-side
// revocation list.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Issuer is the JWT issuer claim for session tokens.
const Issuer = "starleap"

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, structurally malformed, or wrong issuer.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims embedded in a session token. The admin ID
// travels as the registered subject claim; the role is a custom claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminID returns the subject claim parsed as an admin ID.
func (c *Claims) AdminID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenManager issues and verifies HS256-signed session tokens.
// Verification is a pure function of the token and the secret; the caller is
// responsible for re-checking that the referenced admin is still active.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager. A zero ttl falls back to
// DefaultTokenTTL.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the given admin ID and role, expiring a
// fixed duration from now.
func (m *TokenManager) Issue(adminID int64, role string) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("secret key is empty")
	}

	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatInt(adminID, 10),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string, returning its claims.
// Returns ErrInvalidToken for any verification failure.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
