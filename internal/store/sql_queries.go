package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lost-found/models"
)

const usersTable = "users"

// userColumns is the column order every user SELECT returns and scanUser
// expects.
var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"is_verified",
	"otp_code",
	"otp_expires_at",
	"created_at",
	"updated_at",
}

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns("id", "name", "email", "password_hash", "is_verified", "created_at", "updated_at").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.IsVerified, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// buildSaveChallengeQuery overwrites both challenge fields at once, which
// implicitly invalidates any earlier code.
func buildSaveChallengeQuery(sb sq.StatementBuilderType, userID string, challenge models.OTPChallenge, now time.Time) (string, []any, error) {
	return sb.Update(usersTable).
		Set("otp_code", challenge.Code).
		Set("otp_expires_at", challenge.ExpiresAt).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildConsumeChallengeQuery is a compare-and-swap on the stored code: it only
// matches while code is still current and unexpired at now.
func buildConsumeChallengeQuery(sb sq.StatementBuilderType, userID, code string, now time.Time) (string, []any, error) {
	return sb.Update(usersTable).
		Set("otp_code", nil).
		Set("otp_expires_at", nil).
		Set("is_verified", true).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		Where(sq.Eq{"otp_code": code}).
		Where(sq.GtOrEq{"otp_expires_at": now}).
		ToSql()
}

func buildClearExpiredChallengesQuery(sb sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return sb.Update(usersTable).
		Set("otp_code", nil).
		Set("otp_expires_at", nil).
		Set("updated_at", now).
		Where(sq.NotEq{"otp_code": nil}).
		Where(sq.Lt{"otp_expires_at": now}).
		ToSql()
}
