package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim set that identifies an authenticated user.
// The zero value stands for an anonymous request.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsAnonymous reports whether the identity is empty.
func (i Identity) IsAnonymous() bool {
	return i.ID == ""
}

// SessionClaims are the JWT claims of a session token: the user identity
// plus the standard registered claims (sub, iss, iat, exp).
type SessionClaims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`

	jwt.RegisteredClaims
}

// Identity returns the identity carried by the claims.
func (c SessionClaims) Identity() Identity {
	return Identity{ID: c.UserID, Name: c.Name, Email: c.Email}
}

// Token wraps a signed session token.
//
// SignedString holds the compact serialized form (header.payload.signature)
// that is written into the session cookie.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
