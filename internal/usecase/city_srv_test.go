package usecase

import (
	"context"
	"testing"

	"realty-backend/internal/data/repository/memory"
	"realty-backend/internal/dto/request"
	"realty-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCityLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := NewCityService(memory.NewCityRepository(), f.clock, zap.NewNop())
	ctx := context.Background()

	pune, err := svc.Create(ctx, &request.CityRequest{Name: "Pune", SortOrder: 1})
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", pune.State)
	assert.True(t, pune.IsActive)

	inactive := false
	nashik, err := svc.Create(ctx, &request.CityRequest{Name: "Nashik", IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &request.CityRequest{Name: "Pune"})
	requireKind(t, err, apperror.KindConflict, "")

	public, err := svc.List(ctx, request.NewPaginatedRequest(1, 20), nil, false)
	require.NoError(t, err)
	require.Len(t, public.Data, 1)
	assert.Equal(t, "Pune", public.Data[0].Name)

	all, err := svc.List(ctx, request.NewPaginatedRequest(1, 20), nil, true)
	require.NoError(t, err)
	assert.Len(t, all.Data, 2)

	_, err = svc.Get(ctx, nashik.ID, false)
	requireKind(t, err, apperror.KindNotFound, "")

	state := "Goa"
	updated, err := svc.Update(ctx, pune.ID, &request.CityUpdateRequest{State: &state})
	require.NoError(t, err)
	assert.Equal(t, "Goa", updated.State)
	assert.Equal(t, "Pune", updated.Name)

	require.NoError(t, svc.Delete(ctx, pune.ID))
	err = svc.Delete(ctx, pune.ID)
	requireKind(t, err, apperror.KindNotFound, "")
}

func TestCityInvalidID(t *testing.T) {
	f := newFixture(t)
	svc := NewCityService(memory.NewCityRepository(), f.clock, zap.NewNop())

	_, err := svc.Get(context.Background(), "abc", true)
	requireKind(t, err, apperror.KindValidation, apperror.CodeValidation)

	_, err = svc.Get(context.Background(), uuid.NewString(), true)
	requireKind(t, err, apperror.KindNotFound, apperror.CodeNotFound)
}
