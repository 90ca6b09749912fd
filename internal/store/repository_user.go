package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the one-time code challenge
// fields of the "users" table for both PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateUser persists a new user record. CreatedAt and UpdatedAt are set by
// the repository and returned with the stored user.
//
// Error handling:
//   - unique violation on email (pgx 23505 or sqlite UNIQUE) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose stored email equals email.
// Emails are stored normalized, so callers pass [models.NormalizeEmail] output.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// SaveChallenge stores challenge on the user, replacing any previous one.
// Returns [ErrNoUserWasFound] if no row was updated.
func (r *userRepository) SaveChallenge(ctx context.Context, userID string, challenge models.OTPChallenge) error {
	log := logger.FromContext(ctx)

	challenge.ExpiresAt = challenge.ExpiresAt.UTC()
	query, args, err := buildSaveChallengeQuery(r.db.builder, userID, challenge, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveChallenge").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveChallenge").Str("user_id", userID).Msg("error saving challenge")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ConsumeChallenge atomically clears a matching, unexpired challenge and sets
// is_verified. A false result means the challenge was already consumed,
// replaced, swept or expired.
func (r *userRepository) ConsumeChallenge(ctx context.Context, userID, code string, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConsumeChallengeQuery(r.db.builder, userID, code, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConsumeChallenge").Msg("error building update query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConsumeChallenge").Str("user_id", userID).Msg("error consuming challenge")
		return false, err
	}

	return affected == 1, nil
}

// ClearExpiredChallenges wipes both challenge fields on every row whose code
// expired before now.
func (r *userRepository) ClearExpiredChallenges(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClearExpiredChallengesQuery(r.db.builder, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredChallenges").Msg("error building update query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredChallenges").Msg("error clearing expired challenges")
		return 0, err
	}

	return affected, nil
}

func (r *userRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	var result sql.Result
	err := r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := scanUser(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		otpCode   sql.NullString
		otpExpiry sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&otpCode,
		&otpExpiry,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if otpCode.Valid && otpExpiry.Valid {
		code := otpCode.String
		expiresAt := otpExpiry.Time
		user.OTPCode = &code
		user.OTPExpiresAt = &expiresAt
	}

	return user, nil
}
