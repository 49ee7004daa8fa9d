// Package token issues and verifies the signed bearer tokens that stand in
// for a session. Tokens are stateless: nothing is persisted server-side and
// there is no revocation list, so lifetime is fixed at issuance.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskflowhq/taskflow-api/internal/domain"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Claims is the verified payload of a bearer token.
type Claims struct {
	UserID string
	Email  string
}

type jwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret, ttl: DefaultTTL}
}

// Issue signs a token carrying the user identity, expiring after the
// service TTL.
func (s *Service) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// A malformed, tampered or expired token yields domain.ErrTokenInvalid.
// "No token supplied" is the caller's case to handle, never this one.
func (s *Service) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &Claims{UserID: claims.Subject, Email: claims.Email}, nil
}
