package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
)

// sessionTokenIssuer signs session tokens with a key injected at
// construction. Rotating the key invalidates every outstanding session.
type sessionTokenIssuer struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now func() time.Time
}

func NewSessionTokenIssuer(cfg config.App) SessionTokenIssuer {
	return &sessionTokenIssuer{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
	}
}

// Issue signs the identity of user. The token expires after the configured
// duration (7 days by default).
func (s *sessionTokenIssuer) Issue(user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(s.tokenIssuer, user.Identity(), s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, issuer and expiry. Every failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (s *sessionTokenIssuer) Verify(tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now)
	if err != nil {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims.Identity(), nil
}
