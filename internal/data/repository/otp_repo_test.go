package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"realty-backend/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestOTPIssueInvalidatesThenInserts(t *testing.T) {
	mock := newMock(t)
	repo := NewOTPRepository(mock, zap.NewNop())

	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Mobile:     "1234567890",
		CodeHash:   "hash",
		Purpose:    entity.OTPPurposeSignup,
		ExpiresAt:  now.Add(10 * time.Minute),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("1234567890").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec(`UPDATE otps\s+SET is_verified = true`).
		WithArgs("1234567890", now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO otps`).
		WithArgs(otp.ID, "1234567890", "hash", entity.OTPPurposeSignup, false, otp.ExpiresAt, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Issue(context.Background(), otp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPIssueRollsBackOnInsertFailure(t *testing.T) {
	mock := newMock(t)
	repo := NewOTPRepository(mock, zap.NewNop())

	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Mobile:     "1234567890",
		Purpose:    entity.OTPPurposeLogin,
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).WithArgs("1234567890").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec(`UPDATE otps`).WithArgs("1234567890", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(`INSERT INTO otps`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Issue(context.Background(), otp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPConsume(t *testing.T) {
	mock := newMock(t)
	repo := NewOTPRepository(mock, zap.NewNop())

	now := time.Now()
	id := uuid.New()
	purposes := []entity.OTPPurpose{entity.OTPPurposeSignup, entity.OTPPurposeLogin}

	mock.ExpectQuery(`UPDATE otps\s+SET is_verified = true\s+WHERE id = \(`).
		WithArgs("1234567890", "hash", []string{"signup", "login"}, now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "mobile", "code_hash", "purpose", "is_verified", "expires_at", "created_at"}).
			AddRow(id, "1234567890", "hash", entity.OTPPurposeSignup, true, now.Add(5*time.Minute), now.Add(-5*time.Minute)))

	otp, err := repo.Consume(context.Background(), "1234567890", "hash", purposes, now)
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Equal(t, id, otp.ID)
	assert.True(t, otp.IsVerified)
	assert.Equal(t, entity.OTPPurposeSignup, otp.Purpose)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPConsumeNoMatch(t *testing.T) {
	mock := newMock(t)
	repo := NewOTPRepository(mock, zap.NewNop())

	mock.ExpectQuery(`UPDATE otps`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "mobile", "code_hash", "purpose", "is_verified", "expires_at", "created_at"}))

	otp, err := repo.Consume(context.Background(), "1234567890", "hash",
		[]entity.OTPPurpose{entity.OTPPurposeContact}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, otp)
}
