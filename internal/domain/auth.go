package domain

import "errors"

// RoleAdmin grants access to the analytics dashboard.
const RoleAdmin = "admin"

// ErrInvalidToken is returned by a TokenVerifier for unusable tokens.
var ErrInvalidToken = errors.New("invalid token")

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

// HasRole reports whether the principal carries role.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenVerifier verifies a token issued by the authentication provider.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}
