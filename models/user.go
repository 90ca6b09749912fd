package models

import (
	"strings"
	"time"
)

// User represents an account of the lost & found application.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier assigned at creation (UUIDv7).
	ID string `json:"id"`

	// Name is the display name of the user. Not unique.
	Name string `json:"name"`

	// Email is the natural key used for login and OTP lookup.
	// Always stored normalized, see NormalizeEmail.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never plaintext.
	PasswordHash string `json:"-"`

	// IsVerified becomes true the first time an OTP challenge succeeds.
	IsVerified bool `json:"is_verified"`

	// OTPCode is set only while a challenge is outstanding.
	OTPCode *string `json:"-"`

	// OTPExpiresAt is the instant after which OTPCode must be rejected.
	// Set and cleared together with OTPCode.
	OTPExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasActiveChallenge reports whether an OTP challenge is outstanding.
func (u User) HasActiveChallenge() bool {
	return u.OTPCode != nil && u.OTPExpiresAt != nil
}

// Identity returns the claim set carried by session tokens for u.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
