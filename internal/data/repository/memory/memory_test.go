package memory

import (
	"context"
	"testing"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOTP(mobile, hash string, purpose entity.OTPPurpose, at time.Time) *entity.OTP {
	return &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: at},
		Mobile:     mobile,
		CodeHash:   hash,
		Purpose:    purpose,
		ExpiresAt:  at.Add(10 * time.Minute),
	}
}

func TestOTPIssueInvalidatesPending(t *testing.T) {
	ctx := context.Background()
	repo := NewOTPRepository()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Issue(ctx, newOTP("9876543210", "a", entity.OTPPurposeSignup, now)))
	require.NoError(t, repo.Issue(ctx, newOTP("9876543210", "b", entity.OTPPurposeContact, now.Add(time.Second))))

	assert.Equal(t, 1, repo.Pending("9876543210", now.Add(2*time.Second)))

	got, err := repo.Consume(ctx, "9876543210", "a", entity.AuthPurposes, now.Add(2*time.Second))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOTPConsumeOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewOTPRepository()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Issue(ctx, newOTP("9876543210", "a", entity.OTPPurposeLogin, now)))

	got, err := repo.Consume(ctx, "9876543210", "a", entity.AuthPurposes, now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsVerified)

	again, err := repo.Consume(ctx, "9876543210", "a", entity.AuthPurposes, now)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestStaffDuplicateIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository()
	require.NoError(t, repo.Create(ctx, &entity.StaffUser{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Username: "root"}))

	err := repo.Create(ctx, &entity.StaffUser{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Username: "root"})
	assert.True(t, database.IsUniqueViolation(err))
}

func TestContactStats(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository()
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	add := func(at time.Time, read bool) {
		require.NoError(t, repo.Create(ctx, &entity.Contact{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: at},
			Read:       read,
		}))
	}
	add(today.Add(time.Hour), false)
	add(today.Add(-time.Hour), true)
	add(today.AddDate(0, 0, -20), false)

	stats, err := repo.Stats(ctx, entity.LeadWindows{
		TodayStart:     today,
		YesterdayStart: today.AddDate(0, 0, -1),
		WeekStart:      today.AddDate(0, 0, -7),
		MonthStart:     today.AddDate(0, 0, -30),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStats{Today: 1, Yesterday: 1, LastWeek: 2, LastMonth: 3, Total: 3, Unread: 2}, *stats)
}
