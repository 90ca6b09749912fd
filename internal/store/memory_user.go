package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
)

// MemoryUserRepository is a mutex-guarded in-process [UserRepository] with
// the same semantics as the SQL implementation. It backs handler scenarios
// and local experiments where no database is available.
type MemoryUserRepository struct {
	mu      sync.Mutex
	byID    map[string]models.User
	idByKey map[string]string
	now     func() time.Time
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]models.User),
		idByKey: make(map[string]string),
		now:     time.Now,
	}
}

func (m *MemoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.idByKey[user.Email]; taken {
		return models.User{}, ErrEmailAlreadyExists
	}
	if _, taken := m.byID[user.ID]; taken {
		return models.User{}, ErrEmailAlreadyExists
	}

	now := m.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.OTPCode = nil
	user.OTPExpiresAt = nil

	m.byID[user.ID] = user
	m.idByKey[user.Email] = user.ID
	return copyUser(user), nil
}

func (m *MemoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.idByKey[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return copyUser(m.byID[id]), nil
}

func (m *MemoryUserRepository) SaveChallenge(_ context.Context, userID string, challenge models.OTPChallenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byID[userID]
	if !ok {
		return ErrNoUserWasFound
	}

	code := challenge.Code
	expiresAt := challenge.ExpiresAt.UTC()
	user.OTPCode = &code
	user.OTPExpiresAt = &expiresAt
	user.UpdatedAt = m.now().UTC()
	m.byID[userID] = user
	return nil
}

func (m *MemoryUserRepository) ConsumeChallenge(_ context.Context, userID, code string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byID[userID]
	if !ok || !user.HasActiveChallenge() {
		return false, nil
	}
	if *user.OTPCode != code || now.After(*user.OTPExpiresAt) {
		return false, nil
	}

	user.OTPCode = nil
	user.OTPExpiresAt = nil
	user.IsVerified = true
	user.UpdatedAt = now.UTC()
	m.byID[userID] = user
	return true, nil
}

func (m *MemoryUserRepository) ClearExpiredChallenges(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cleared int64
	for id, user := range m.byID {
		if !user.HasActiveChallenge() || !user.OTPExpiresAt.Before(now) {
			continue
		}
		user.OTPCode = nil
		user.OTPExpiresAt = nil
		user.UpdatedAt = now.UTC()
		m.byID[id] = user
		cleared++
	}
	return cleared, nil
}

// copyUser detaches the challenge pointers from the stored record.
func copyUser(user models.User) models.User {
	if user.OTPCode != nil {
		code := *user.OTPCode
		user.OTPCode = &code
	}
	if user.OTPExpiresAt != nil {
		expiresAt := *user.OTPExpiresAt
		user.OTPExpiresAt = &expiresAt
	}
	return user
}
