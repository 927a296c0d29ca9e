package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims are the identity claims carried by a session token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens. Tokens are HS256 with a
// fixed validity window from issuance; possession of a valid token is the
// sole authentication proof, no server-side state is kept.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

func (j *JWTService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

func (j *JWTService) Verify(tokenString string) (userID string, email string, err error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidSessionToken
	}

	return claims.Subject, claims.Email, nil
}
