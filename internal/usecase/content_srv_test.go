package usecase

import (
	"context"
	"testing"
	"time"

	"realty-backend/internal/data/repository/memory"
	"realty-backend/internal/dto/request"
	"realty-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviewDefaultsAndStats(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(memory.NewReviewRepository(), f.clock, zap.NewNop())
	ctx := context.Background()

	plain, err := svc.Create(ctx, &request.ReviewRequest{CustomerName: "Meera", ReviewText: "Smooth handover"})
	require.NoError(t, err)
	assert.Equal(t, "Happy Customer", plain.Designation)
	assert.Equal(t, 5, plain.Rating)

	three := 3
	f.now = f.now.Add(time.Minute)
	_, err = svc.Create(ctx, &request.ReviewRequest{CustomerName: "Arjun", ReviewText: "Okay", Rating: &three, Featured: true})
	require.NoError(t, err)

	six := 6
	_, err = svc.Create(ctx, &request.ReviewRequest{CustomerName: "X", ReviewText: "Y", Rating: &six})
	requireKind(t, err, apperror.KindValidation, apperror.CodeValidation)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Arjun", featured[0].CustomerName)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ReviewCount)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
}

func TestBlogSlugVisibilityAndViews(t *testing.T) {
	f := newFixture(t)
	svc := NewBlogService(memory.NewBlogRepository(), f.clock, zap.NewNop())
	ctx := context.Background()

	post, err := svc.Create(ctx, &request.BlogPostRequest{Title: "Why Pune Real Estate?", Content: "Because."})
	require.NoError(t, err)
	assert.Equal(t, "why-pune-real-estate", post.Slug)
	assert.Equal(t, "NationNineRealty", post.Author)
	assert.Equal(t, "Real Estate", post.Category)
	assert.True(t, post.Published)

	_, err = svc.Create(ctx, &request.BlogPostRequest{Title: "Why Pune Real Estate?", Content: "Again"})
	requireKind(t, err, apperror.KindConflict, "")

	draft := false
	_, err = svc.Create(ctx, &request.BlogPostRequest{Title: "Draft", Slug: "draft-post", Content: "wip", Published: &draft})
	require.NoError(t, err)

	_, err = svc.GetBySlug(ctx, "draft-post", false)
	requireKind(t, err, apperror.KindNotFound, "")
	_, err = svc.GetBySlug(ctx, "draft-post", true)
	require.NoError(t, err)

	public, err := svc.List(ctx, request.NewPaginatedRequest(1, 20), BlogQuery{}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), public.Pagination.Total)

	got, err := svc.GetBySlug(ctx, post.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
	got, err = svc.GetBySlug(ctx, post.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	require.NoError(t, svc.Delete(ctx, post.Slug))
	_, err = svc.GetBySlug(ctx, post.Slug, true)
	requireKind(t, err, apperror.KindNotFound, "")
}

func TestContactSubmitFeedsLeads(t *testing.T) {
	f := newFixture(t)
	contacts := NewContactService(f.contacts, f.clock, zap.NewNop())
	leads := NewLeadService(f.contacts, time.UTC, f.clock, zap.NewNop())
	ctx := context.Background()

	_, err := contacts.Submit(ctx, &request.ContactRequest{
		Name: "Kiran", Email: "kiran@example.com", Phone: "9876543210", Subject: "Site visit", Message: "Saturday?",
	})
	require.NoError(t, err)

	_, err = contacts.Submit(ctx, &request.ContactRequest{Name: "Kiran"})
	requireKind(t, err, apperror.KindValidation, apperror.CodeMissingFields)

	stats, err := leads.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, int64(1), stats.Unread)
}
