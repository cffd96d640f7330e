// Package auth validates actor tokens issued by the identity provider.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager validates HS256 actor tokens and can mint them for tooling
// and tests.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// actorClaims extends standard JWT claims with the actor's profile.
type actorClaims struct {
	jwt.RegisteredClaims
	Username string `json:"preferred_username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// GenerateActorToken creates a signed HS256 JWT with the user ID as subject.
func (m *JWTManager) GenerateActorToken(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: id.Username,
		Email:    id.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateActorToken parses and validates an actor token.
func (m *JWTManager) ValidateActorToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &actorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}
	if userID == uuid.Nil {
		return Identity{}, fmt.Errorf("invalid subject: nil UUID")
	}

	return Identity{UserID: userID, Username: claims.Username, Email: claims.Email}, nil
}
