// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lost-found/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	queryNow      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		ID:           "u-1",
		Name:         "Ana",
		Email:        "ana@u.edu",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    queryNow,
		UpdatedAt:    queryNow,
	}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into users"))
	for _, col := range []string{"id", "name", "email", "password_hash", "is_verified", "created_at", "updated_at"} {
		assert.Contains(t, q, col)
	}
	// challenge fields start empty
	assert.NotContains(t, q, "otp_code")
	assert.Contains(t, query, "$7")

	require.Len(t, args, 7)
	assert.Equal(t, []any{"u-1", "Ana", "ana@u.edu", "$2a$10$hash", false, queryNow, queryNow}, args)
}

func Test_buildSelectUserQueries(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantWhere string
		wantArg   string
	}{
		{
			name:      "by email",
			build:     func() (string, []any, error) { return buildSelectUserByEmailQuery(pgBuilder, "ana@u.edu") },
			wantWhere: "WHERE email = $1",
			wantArg:   "ana@u.edu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT "+strings.Join(userColumns, ", ")))
			assert.Contains(t, query, "FROM users")
			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, []any{tt.wantArg}, args)
		})
	}
}

func Test_buildSaveChallengeQuery(t *testing.T) {
	challenge := models.OTPChallenge{Code: "482913", ExpiresAt: queryNow.Add(10 * time.Minute)}

	query, args, err := buildSaveChallengeQuery(pgBuilder, "u-1", challenge, queryNow)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET otp_code = $1, otp_expires_at = $2, updated_at = $3 WHERE id = $4", query)
	assert.Equal(t, []any{"482913", challenge.ExpiresAt, queryNow, "u-1"}, args)
}

func Test_buildConsumeChallengeQuery(t *testing.T) {
	query, args, err := buildConsumeChallengeQuery(pgBuilder, "u-1", "482913", queryNow)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET otp_code = $1, otp_expires_at = $2, is_verified = $3, updated_at = $4 "+
			"WHERE id = $5 AND otp_code = $6 AND otp_expires_at >= $7",
		query)
	assert.Equal(t, []any{nil, nil, true, queryNow, "u-1", "482913", queryNow}, args)
}

func Test_buildClearExpiredChallengesQuery(t *testing.T) {
	query, args, err := buildClearExpiredChallengesQuery(pgBuilder, queryNow)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET otp_code = $1, otp_expires_at = $2, updated_at = $3 "+
			"WHERE otp_code IS NOT NULL AND otp_expires_at < $4",
		query)
	assert.Equal(t, []any{nil, nil, queryNow, queryNow}, args)
}

func Test_buildQueries_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildConsumeChallengeQuery(sqliteBuilder, "u-1", "482913", queryNow)
	require.NoError(t, err)

	assert.NotContains(t, query, "$")
	assert.Equal(t, 7, strings.Count(query, "?"))
}
