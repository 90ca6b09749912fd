// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashIsNotPlaintext(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.NotContains(t, hash, "secret1")
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash, got %q", hash)
}

func TestPasswordHasher_SaltedPerHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	// same password, different salt → different stored hash
	assert.NotEqual(t, first, second)
	assert.True(t, h.Compare(first, "secret1"))
	assert.True(t, h.Compare(second, "secret1"))
}

func TestPasswordHasher_Compare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hash      string
		candidate string
		want      bool
	}{
		{"correct password", hash, "secret1", true},
		{"wrong password", hash, "secret2", false},
		{"case differs", hash, "SECRET1", false},
		{"empty candidate", hash, "", false},
		{"malformed hash", "not-a-hash", "secret1", false},
		{"plaintext stored as hash", "secret1", "secret1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Compare(tt.hash, tt.candidate))
		})
	}
}

func TestPasswordHasher_CompareDummy(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, h.CompareDummy("secret1"))
	assert.False(t, h.CompareDummy(""))

	cost, err := bcrypt.Cost(h.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	assert.Equal(t, DefaultPasswordCost, NewPasswordHasher(0).cost)
	assert.Equal(t, DefaultPasswordCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, IsPasswordTooLong(err))
}
