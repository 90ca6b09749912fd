package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
)

// credentialStore is the CredentialStore backed by a UserRepository.
// Password material is hashed with bcrypt and never logged.
type credentialStore struct {
	userRepository store.UserRepository
	hasher         *utils.PasswordHasher
	ids            *utils.UUIDGenerator
}

func NewCredentialStore(userRepository store.UserRepository, hasher *utils.PasswordHasher) CredentialStore {
	return &credentialStore{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
	}
}

// Create normalizes email, refuses an existing account and persists a new
// unverified user with a freshly salted password hash.
//
// The lookup runs before any hashing or write; the unique index on email
// still backs it up when two signups race.
func (c *credentialStore) Create(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrValidation
	}

	_, err := c.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("signup for existing email rejected")
		return models.User{}, ErrDuplicateAccount
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		if utils.IsPasswordTooLong(err) {
			return models.User{}, fmt.Errorf("%w: password is too long", ErrValidation)
		}
		return models.User{}, err
	}

	created, err := c.userRepository.CreateUser(ctx, models.User{
		ID:           c.ids.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrDuplicateAccount
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (c *credentialStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return c.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(email))
}

// VerifyPassword compares candidate with the stored hash. A user without a
// hash costs the same bcrypt work and never matches.
func (c *credentialStore) VerifyPassword(user models.User, candidate string) bool {
	if user.PasswordHash == "" {
		return c.hasher.CompareDummy(candidate)
	}
	return c.hasher.Compare(user.PasswordHash, candidate)
}
