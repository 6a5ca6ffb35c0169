package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bookly-app/bookly-server/internal/model"
)

// Claims represents JWT claims carrying the subject payload and token type flag.
type Claims struct {
	jwt.RegisteredClaims
	User    model.Subject `json:"user"`
	Refresh bool          `json:"refresh"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Issue creates a signed token for the subject. Each call mints a fresh jti.
func (j *JWT) Issue(subject model.Subject, refresh bool, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		User:    subject,
		Refresh: refresh,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", model.ErrTokenInvalid
	}

	return tokenString, nil
}

// Decode verifies signature, algorithm and expiry, and returns the parsed
// claims. Every failure collapses into ErrTokenInvalid so callers treat
// absence-of-claims as "invalid" uniformly.
func (j *JWT) Decode(tokenString string) (*model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrTokenInvalid
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid || claims.ExpiresAt == nil {
		return nil, model.ErrTokenInvalid
	}

	return &model.TokenClaims{
		Subject:   claims.User,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		Refresh:   claims.Refresh,
	}, nil
}
