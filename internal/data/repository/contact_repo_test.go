package repository

import (
	"context"
	"testing"
	"time"

	"realty-backend/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContactStats(t *testing.T) {
	mock := newMock(t)
	repo := NewContactRepository(mock, zap.NewNop())

	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	windows := entity.LeadWindows{
		TodayStart:     today,
		YesterdayStart: today.AddDate(0, 0, -1),
		WeekStart:      today.AddDate(0, 0, -7),
		MonthStart:     today.AddDate(0, 0, -30),
	}

	mock.ExpectQuery(`FILTER \(WHERE created_at >= \$1 AND created_at < \$5\)`).
		WithArgs(windows.TodayStart, windows.YesterdayStart, windows.WeekStart, windows.MonthStart, today.AddDate(0, 0, 1)).
		WillReturnRows(pgxmock.NewRows([]string{"today", "yesterday", "last_week", "last_month", "total", "unread"}).
			AddRow(int64(2), int64(1), int64(5), int64(9), int64(12), int64(4)))

	stats, err := repo.Stats(context.Background(), windows)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStats{Today: 2, Yesterday: 1, LastWeek: 5, LastMonth: 9, Total: 12, Unread: 4}, *stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMarkRead(t *testing.T) {
	mock := newMock(t)
	repo := NewContactRepository(mock, zap.NewNop())

	known, unknown := uuid.New(), uuid.New()
	mock.ExpectExec(`UPDATE contacts SET read = true WHERE id = \$1`).WithArgs(known).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE contacts SET read = true WHERE id = \$1`).WithArgs(unknown).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := repo.MarkRead(context.Background(), known)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.MarkRead(context.Background(), unknown)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestContactFindAllWithWindow(t *testing.T) {
	mock := newMock(t)
	repo := NewContactRepository(mock, zap.NewNop())

	from := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	id := uuid.New()
	title := "Skyline"

	mock.ExpectQuery(`WHERE TRUE AND c.created_at >= \$1 AND c.created_at < \$2 ORDER BY c.created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(from, to, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "project_id", "name", "email", "phone", "subject", "message", "read", "created_at", "title"}).
			AddRow(id, (*uuid.UUID)(nil), "Asha", "asha@example.com", "9876543210", "Visit", "Hi", false, from.Add(time.Hour), &title))

	contacts, err := repo.FindAll(context.Background(), entity.TimeRange{From: &from, To: &to}, 20, 0)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Asha", contacts[0].Name)
	assert.Equal(t, "Skyline", *contacts[0].ProjectTitle)
}
