package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid covers every verification failure: bad signature,
// expired token, wrong issuer, malformed input.
var ErrTokenInvalid = errors.New("invalid token")

// TokenService issues and verifies signed identity tokens. The user id
// travels as the subject claim; the configured realm as the issuer.
// It never performs a persistence lookup.
type TokenService struct {
	secret []byte
	realm  string
	ttl    time.Duration
}

func NewTokenService(secret []byte, realm string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		realm:  realm,
		ttl:    ttl,
	}
}

// Issue creates a signed, time-bounded token for the given user id.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.realm,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and yields the raw subject string.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.realm),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
