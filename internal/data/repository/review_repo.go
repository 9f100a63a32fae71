package repository

import (
	"context"
	"errors"
	"fmt"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindAll(ctx context.Context, featured *bool, limit, offset int) ([]*entity.Review, error)
	Count(ctx context.Context, featured *bool) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetRatingStats(ctx context.Context) (float64, int64, error) // average, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewSelect = `SELECT id, customer_name, designation, review_text, rating, featured, created_at FROM reviews`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, customer_name, designation, review_text, rating, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.CustomerName,
		review.Designation,
		review.ReviewText,
		review.Rating,
		review.Featured,
		review.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("customer_name", review.CustomerName),
		)
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	rows, err := r.db.Query(ctx, reviewSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find review %s: %w", id.String(), err)
	}

	review, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.Review])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID", zap.Error(err), zap.String("review_id", id.String()))
		return nil, fmt.Errorf("scan review %s: %w", id.String(), err)
	}
	return review, nil
}

func reviewFilter(featured *bool) *queryFilter {
	f := newQueryFilter()
	if featured != nil {
		f.and("featured = %s", *featured)
	}
	return f
}

func (r *reviewRepository) FindAll(ctx context.Context, featured *bool, limit, offset int) ([]*entity.Review, error) {
	f := reviewFilter(featured)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, reviewSelect+f.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Review])
	if err != nil {
		return nil, fmt.Errorf("scan review rows: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context, featured *bool) (int64, error) {
	f := reviewFilter(featured)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return total, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET customer_name = $2, designation = $3, review_text = $4, rating = $5, featured = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.CustomerName,
		review.Designation,
		review.ReviewText,
		review.Rating,
		review.Featured,
	)
	if err != nil {
		r.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", review.ID.String()))
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", review.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id.String(), ErrNotFound)
	}
	return nil
}

func (r *reviewRepository) GetRatingStats(ctx context.Context) (float64, int64, error) {
	var avg float64
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*) FROM reviews`).Scan(&avg, &count)
	if err != nil {
		r.log.Error("Failed to get review stats", zap.Error(err))
		return 0, 0, fmt.Errorf("review stats: %w", err)
	}
	return avg, count, nil
}
