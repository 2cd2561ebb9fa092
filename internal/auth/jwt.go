// Package auth issues and validates the signed session tokens carried in the
// session cookie or an Authorization header.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// MinSecretLength is the shortest accepted HS256 secret.
const MinSecretLength = 32

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a token manager.
func NewTokenManager(secret, issuer string, ttl time.Duration) (*TokenManager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("auth: secret must be at least %d characters", MinSecretLength)
	}
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// sessionClaims extends standard JWT claims with the user's role.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Issue creates a signed token with the user id as subject and the role as a
// custom claim.
func (m *TokenManager) Issue(userID uuid.UUID, role string) (string, error) {
	if userID == uuid.Nil {
		return "", errors.New("auth: user id is required")
	}
	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseSession verifies a session token and returns the session it carries.
// Expired tokens fail with an error wrapping jwt.ErrTokenExpired.
func (m *TokenManager) ParseSession(_ context.Context, tokenString string) (ctxutil.Session, error) {
	if tokenString == "" {
		return ctxutil.Session{}, errors.New("token is empty")
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return ctxutil.Session{}, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctxutil.Session{}, fmt.Errorf("invalid subject: %w", err)
	}
	if claims.Role != "" && claims.Role != ctxutil.RoleAdmin {
		return ctxutil.Session{}, fmt.Errorf("unknown role %q", claims.Role)
	}
	return ctxutil.Session{UserID: userID, Role: claims.Role}, nil
}
