package auth

import (
	"errors"
	"fmt"
	"time"

	"fitstudio/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type jwtVerifier struct {
	secret []byte
	leeway time.Duration
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret
// by the authentication provider.
func NewJWTVerifier(secret string, leeway time.Duration) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret), leeway: leeway}
}

func (v *jwtVerifier) Verify(token string) (*domain.Principal, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	return &domain.Principal{UserID: claims.Subject, Email: claims.Email, Roles: claims.Roles}, nil
}

// IsInvalidToken reports whether err came from a rejected token.
func IsInvalidToken(err error) bool {
	return errors.Is(err, domain.ErrInvalidToken)
}
