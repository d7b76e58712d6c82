package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService mints HS256 access credentials. It signs the payload as given:
// no payload validation, no persistence, no revocation. Expiry is the only
// termination mechanism.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
	now      func() time.Time
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL, now: time.Now}
}

// Issue signs the identity payload with a fixed expiry from issuance time.
func (s *TokenService) Issue(claims ports.IdentityClaims) (string, error) {
	mc := jwt.MapClaims{
		"email": claims.Email,
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}
	if claims.Name != "" {
		mc["name"] = claims.Name
	}
	if claims.Role != "" {
		mc["role"] = claims.Role
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString([]byte(s.secret))
}
