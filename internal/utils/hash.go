package utils

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost matches the work factor the accounts were created
// with (bcrypt cost 10).
const DefaultPasswordCost = 10

// PasswordHasher hashes and compares passwords with bcrypt.
//
// bcrypt embeds a fresh random salt into every hash, so two accounts with
// the same password never share a stored hash.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewPasswordHasher returns a hasher using the given bcrypt cost.
// Out-of-range costs fall back to DefaultPasswordCost.
//
// Example usage:
//
//	hasher := utils.NewPasswordHasher(10)
//	hash, err := hasher.Hash("secret1")
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether candidate matches hash. A malformed hash is
// reported as a mismatch.
func (h *PasswordHasher) Compare(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// CompareDummy spends the same bcrypt work as Compare against a hash of the
// hasher's cost and always reports a mismatch. Used when there is no stored
// hash to compare with.
func (h *PasswordHasher) CompareDummy(candidate string) bool {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lost-found-no-account"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(candidate))
	return false
}

// IsPasswordTooLong reports whether bcrypt would refuse password.
func IsPasswordTooLong(err error) bool {
	return errors.Is(err, bcrypt.ErrPasswordTooLong)
}
