package usecase

import (
	"context"
	"strings"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	List(ctx context.Context, req *request.PaginatedRequest, featured *bool) (*response.PaginatedResponse[response.ReviewResponse], error)
	Featured(ctx context.Context) ([]response.ReviewResponse, error)
	Stats(ctx context.Context) (*response.ReviewStats, error)
	Get(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	Create(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo repository.ReviewRepository
	now  Clock
	log  *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, now Clock, log *zap.Logger) ReviewService {
	return &reviewService{repo: repo, now: now, log: log.With(zap.String("service", "review"))}
}

func (s *reviewService) List(ctx context.Context, req *request.PaginatedRequest, featured *bool) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.FindAll(ctx, featured, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list reviews", "Review", err)
	}
	total, err := s.repo.Count(ctx, featured)
	if err != nil {
		return nil, storeError(s.log, "count reviews", "Review", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(reviews, response.ReviewToResponse), req.Page, req.Limit(), total), nil
}

func (s *reviewService) Featured(ctx context.Context) ([]response.ReviewResponse, error) {
	yes := true
	reviews, err := s.repo.FindAll(ctx, &yes, embedLimit, 0)
	if err != nil {
		return nil, storeError(s.log, "list featured reviews", "Review", err)
	}
	return response.MapSlice(reviews, response.ReviewToResponse), nil
}

func (s *reviewService) Stats(ctx context.Context) (*response.ReviewStats, error) {
	avg, count, err := s.repo.GetRatingStats(ctx)
	if err != nil {
		return nil, storeError(s.log, "get review stats", "Review", err)
	}
	return &response.ReviewStats{AverageRating: avg, ReviewCount: count}, nil
}

func (s *reviewService) find(ctx context.Context, reviewID string) (*entity.Review, error) {
	id, err := parseID(reviewID, "review")
	if err != nil {
		return nil, err
	}
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get review", "Review", err)
	}
	if review == nil {
		return nil, notFound("Review")
	}
	return review, nil
}

func (s *reviewService) Get(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.find(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Create(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	review := &entity.Review{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		CustomerName: strings.TrimSpace(req.CustomerName),
		Designation:  entity.DefaultDesignation,
		ReviewText:   req.ReviewText,
		Rating:       5,
		Featured:     req.Featured,
	}
	if req.Designation != nil && *req.Designation != "" {
		review.Designation = *req.Designation
	}
	setIf(&review.Rating, req.Rating)

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, storeError(s.log, "create review", "Review", err)
	}
	s.log.Info("Review created", zap.String("review_id", review.ID.String()), zap.Int("rating", review.Rating))
	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	review, err := s.find(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	updated := setIf(&review.CustomerName, req.CustomerName)
	updated = setIf(&review.Designation, req.Designation) || updated
	updated = setIf(&review.ReviewText, req.ReviewText) || updated
	updated = setIf(&review.Rating, req.Rating) || updated
	updated = setIf(&review.Featured, req.Featured) || updated
	if updated {
		if err := s.repo.Update(ctx, review); err != nil {
			return nil, storeError(s.log, "update review", "Review", err)
		}
	}
	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID string) error {
	id, err := parseID(reviewID, "review")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete review", "Review", err)
	}
	s.log.Info("Review deleted", zap.String("review_id", reviewID))
	return nil
}
