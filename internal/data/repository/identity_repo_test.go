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

var identityCols = []string{"id", "mobile", "first_name", "last_name", "email", "is_active",
	"is_registered", "last_login_at", "created_at", "updated_at"}

func TestEnsureByMobileUpserts(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock, zap.NewNop())

	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO identities .* ON CONFLICT \(mobile\) DO UPDATE`).
		WithArgs(pgxmock.AnyArg(), "1234567890", now).
		WillReturnRows(pgxmock.NewRows(identityCols).
			AddRow(id, "1234567890", "", "", (*string)(nil), true, false, (*time.Time)(nil), now, now))

	identity, err := repo.EnsureByMobile(context.Background(), "1234567890", now)
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.False(t, identity.IsRegistered)
	assert.True(t, identity.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByMobileMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock, zap.NewNop())

	mock.ExpectQuery(`FROM identities WHERE mobile = \$1`).
		WithArgs("9999999999").
		WillReturnRows(pgxmock.NewRows(identityCols))

	identity, err := repo.FindByMobile(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestCompleteRegistrationNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock, zap.NewNop())

	now := time.Now()
	identity := &entity.Identity{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), UpdatedAt: now},
		FirstName:    "A",
		LastName:     "B",
		LastLoginAt:  &now,
	}

	mock.ExpectExec(`WHERE id = \$1 AND is_registered = false`).
		WithArgs(identity.ID, "A", "B", identity.Email, identity.LastLoginAt, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(identity.ID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.CompleteRegistration(context.Background(), identity)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, identity.IsRegistered)
}

func TestCompleteRegistrationAlreadyRegistered(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock, zap.NewNop())

	now := time.Now()
	identity := &entity.Identity{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), UpdatedAt: now},
		FirstName:    "Mallory",
		LastName:     "Doe",
		LastLoginAt:  &now,
	}

	mock.ExpectExec(`WHERE id = \$1 AND is_registered = false`).
		WithArgs(identity.ID, "Mallory", "Doe", identity.Email, identity.LastLoginAt, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(identity.ID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.CompleteRegistration(context.Background(), identity)
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
	assert.False(t, identity.IsRegistered)
}
