package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by GenerateSessionToken when a required
// parameter is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating session token")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying the identity
// claims {id, name, email}.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("lost-found", user.Identity(), 7*24*time.Hour, "secret", time.Now())
func GenerateSessionToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string, issuedAt time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || identity.ID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.SessionClaims{
		UserID: identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken validates the given token string and extracts
// its claims.
//
// Validation includes:
//   - HS256 as the only accepted signing method
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim check, evaluated against now
//   - Presence of the subject and of the id claim, which must agree
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	var claims models.SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" || subject != claims.UserID {
		return models.Token{}, errors.New("token subject is empty or does not match id claim")
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
