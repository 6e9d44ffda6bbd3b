// Package auth issues and verifies the API keys the roster server accepts.
// Keys are HS256 JWTs carrying a role claim.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Role is the privilege level embedded in an API key.
type Role string

const (
	// RoleAnon is the publishable key handed to roster clients.
	RoleAnon Role = "anon"
	// RoleService is an operator key.
	RoleService Role = "service_role"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAnon || r == RoleService
}

// Claims are the registered JWT claims plus the key's role.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Issuer is the "iss" claim written into every key.
const Issuer = "roster"

// GenerateAPIKey signs a key for role. A zero ttl produces a key without
// expiry.
func GenerateAPIKey(role Role, secretKey []byte, ttl time.Duration) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}
	if len(secretKey) == 0 {
		return "", errors.New("empty secret key")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Role: role,
	}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseAPIKey verifies tokenString and returns its claims. Any failure
// (bad signature, expiry, wrong algorithm, unknown role) matches
// common.ErrInvalidToken.
func ParseAPIKey(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(Issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid || !claims.Role.Valid() {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
