// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// one-time code generation, redirect sanitizing, session token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-lost-found/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the request identity in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, user.Identity())
var IdentityCtxKey = contextKey("identity")

// ContextWithIdentity returns a copy of ctx carrying identity.
func ContextWithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the request identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true: an authenticated identity is present
//   - ok == false: the request is anonymous (missing, wrong type or empty)
//
// The returned identity is the zero (anonymous) value when ok is false.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.IsAnonymous() {
		return models.Identity{}, false
	}
	return identity, true
}
