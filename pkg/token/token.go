// Package token issues and verifies the signed bearer tokens embedded in
// magic links.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid covers every verification failure: malformed token, bad
// signature, expired. Callers are not told which.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims is the identity payload carried by a magic-link token.
type Claims struct {
	StartupID   string `json:"startupId"`
	StartupName string `json:"startupName"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide HMAC secret.
type Service interface {
	Issue(startupID, startupName, email string, ttl time.Duration) (string, error)
	Verify(token string) (Claims, error)
}

type hmacService struct {
	secret []byte
	now    func() time.Time
}

// NewService creates a Service signing with HS256. now may be nil, in which
// case time.Now is used; tests inject a fixed clock.
func NewService(secret string, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &hmacService{secret: []byte(secret), now: now}
}

func (s *hmacService) Issue(startupID, startupName, email string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		StartupID:   startupID,
		StartupName: startupName,
		Email:       email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *hmacService) Verify(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, ErrTokenInvalid
	}
	if claims.StartupID == "" {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
