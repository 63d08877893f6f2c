// Package jwtmw issues and verifies HS256 tokens and provides the gin
// middleware that authenticates requests with them.
package jwtmw

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload.
type Claims struct {
	Role string    `json:"role"`
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// Generator signs and verifies one type of token with its own secret.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, role string) (string, error)
	// ParseToken verifies signature, expiry and type, returning the claims.
	ParseToken(token string) (*Claims, error)
}

type generator struct {
	secret     []byte
	expiration time.Duration
	typ        TokenType
	now        func() time.Time
}

var _ Generator = (*generator)(nil)

// NewGenerator creates a generator for tokens of type typ.
func NewGenerator(secret string, expiration time.Duration, typ TokenType) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		typ:        typ,
		now:        time.Now,
	}
}

// GenerateToken creates a signed JWT. Every token carries a random jti, so
// two tokens for the same user never collide even within one second.
func (g *generator) GenerateToken(userID uint, role string) (string, error) {
	now := g.now()
	claims := Claims{
		Role: role,
		Type: g.typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the token. Only HMAC-SHA256 is accepted.
func (g *generator) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(g.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != g.typ {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
