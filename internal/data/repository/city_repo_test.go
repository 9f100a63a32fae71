package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCityFindAllActiveOnly(t *testing.T) {
	mock := newMock(t)
	repo := NewCityRepository(mock, zap.NewNop())

	now := time.Now()
	mock.ExpectQuery(`FROM cities WHERE TRUE AND is_active = true ORDER BY sort_order, name LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "state", "is_active", "sort_order", "created_at", "updated_at"}).
			AddRow(uuid.New(), "Pune", "Maharashtra", true, 1, now, now).
			AddRow(uuid.New(), "Mumbai", "Maharashtra", true, 2, now, now))

	cities, err := repo.FindAll(context.Background(), CityFilter{ActiveOnly: true}, 20, 0)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Pune", cities[0].Name)
	assert.Equal(t, 2, cities[1].SortOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCitySearchTreatsWildcardsLiterally(t *testing.T) {
	mock := newMock(t)
	repo := NewCityRepository(mock, zap.NewNop())

	search := "_"
	mock.ExpectQuery(`name ILIKE \$1 ESCAPE '\\' OR state ILIKE \$1 ESCAPE '\\'`).
		WithArgs(`%\_%`, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "state", "is_active", "sort_order", "created_at", "updated_at"}))

	cities, err := repo.FindAll(context.Background(), CityFilter{Search: &search}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, cities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityDeleteMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewCityRepository(mock, zap.NewNop())

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM cities WHERE id = \$1`).WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)
	assert.True(t, errors.Is(err, ErrNotFound))
}
