package usecase

import (
	"context"
	"testing"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/dto/request"
	"realty-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWindowsUseLocalMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC sudah lewat tengah malam di IST
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	w := Windows(now, loc)

	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), w.TodayStart)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), w.YesterdayStart)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, loc), w.WeekStart)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, loc), w.MonthStart)
}

func TestPeriodRange(t *testing.T) {
	w := Windows(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), time.UTC)

	r, err := PeriodRange(entity.PeriodToday, w)
	require.NoError(t, err)
	require.NotNil(t, r.From)
	assert.Equal(t, w.TodayStart, *r.From)
	require.NotNil(t, r.To)
	assert.Equal(t, w.TodayStart.AddDate(0, 0, 1), *r.To)

	r, err = PeriodRange(entity.PeriodYesterday, w)
	require.NoError(t, err)
	assert.Equal(t, w.YesterdayStart, *r.From)
	assert.Equal(t, w.TodayStart, *r.To)

	r, err = PeriodRange("", w)
	require.NoError(t, err)
	assert.Nil(t, r.From)
	assert.Nil(t, r.To)

	_, err = PeriodRange("decade", w)
	requireKind(t, err, apperror.KindValidation, apperror.CodeValidation)
}

func seedLeads(t *testing.T, f *fixture) (unread uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	add := func(at time.Time, read bool) uuid.UUID {
		id := uuid.New()
		require.NoError(t, f.contacts.Create(ctx, &entity.Contact{
			BaseSimple: entity.BaseSimple{ID: id, CreatedAt: at},
			Name:       "Lead",
			Read:       read,
		}))
		return id
	}
	unread = add(f.now.Add(-time.Hour), false)
	add(f.now.AddDate(0, 0, -1), true)
	add(f.now.AddDate(0, 0, -3), false)
	add(f.now.AddDate(0, 0, -40), true)
	return unread
}

func TestLeadStatsAndList(t *testing.T) {
	f := newFixture(t)
	svc := NewLeadService(f.contacts, time.UTC, f.clock, zap.NewNop())
	ctx := context.Background()
	seedLeads(t, f)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, int64(1), stats.Yesterday)
	assert.Equal(t, int64(3), stats.LastWeek)
	assert.Equal(t, int64(3), stats.LastMonth)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Unread)

	page, err := svc.List(ctx, "today", request.NewPaginatedRequest(1, 20))
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)

	page, err = svc.List(ctx, "all", request.NewPaginatedRequest(1, 2))
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestMarkRead(t *testing.T) {
	f := newFixture(t)
	svc := NewLeadService(f.contacts, time.UTC, f.clock, zap.NewNop())
	ctx := context.Background()
	id := seedLeads(t, f)

	lead, err := svc.MarkRead(ctx, id.String())
	require.NoError(t, err)
	assert.True(t, lead.Read)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Unread)

	_, err = svc.MarkRead(ctx, uuid.NewString())
	requireKind(t, err, apperror.KindNotFound, apperror.CodeNotFound)

	_, err = svc.MarkRead(ctx, "not-a-uuid")
	requireKind(t, err, apperror.KindNotFound, apperror.CodeNotFound)
}

func TestStatsTodayMatchesTodayList(t *testing.T) {
	f := newFixture(t)
	svc := NewLeadService(f.contacts, time.UTC, f.clock, zap.NewNop())
	ctx := context.Background()
	seedLeads(t, f)

	// skewed client clock: dated tomorrow
	require.NoError(t, f.contacts.Create(ctx, &entity.Contact{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: f.now.AddDate(0, 0, 1)},
		Name:       "Skewed",
	}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	page, err := svc.List(ctx, "today", request.NewPaginatedRequest(1, 20))
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, stats.Today, page.Pagination.Total)
	assert.Equal(t, int64(5), stats.Total)
}
