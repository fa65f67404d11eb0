package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// tokenClaims is the signed payload: {userId, userEmail, iat, exp}.
type tokenClaims struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService fails when secret is empty; callers treat that as fatal.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret is required but was empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source. Used by tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token binding userID and email, expiring after the TTL.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserID:    userID,
		UserEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature first, then expiry. A token is expired only once
// the clock is strictly past its exp; at exp itself it still verifies.
// It never returns an error; the outcome is carried in the result's Status.
func (s *TokenService) Verify(token string) domain.TokenVerification {
	claims := &tokenClaims{}
	// Claims are validated below: jwt's own exp check treats now == exp as expired.
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.TokenVerification{Status: domain.VerifyMalformed}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domain.TokenVerification{Status: domain.VerifyInvalidSignature}
	default:
		// bad claim types
		return domain.TokenVerification{Status: domain.VerifyMalformed}
	}

	if claims.ExpiresAt == nil || claims.UserID == "" {
		return domain.TokenVerification{Status: domain.VerifyMalformed}
	}
	if s.now().After(claims.ExpiresAt.Time) {
		return domain.TokenVerification{Status: domain.VerifyExpired}
	}

	return domain.TokenVerification{
		Status:   domain.VerifyOK,
		Identity: domain.Identity{UserID: claims.UserID, Email: claims.UserEmail},
	}
}
