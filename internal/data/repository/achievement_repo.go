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

type AchievementRepository interface {
	Create(ctx context.Context, achievement *entity.Achievement) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Achievement, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Achievement, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, achievement *entity.Achievement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type achievementRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAchievementRepository(db database.PgxIface, log *zap.Logger) AchievementRepository {
	return &achievementRepository{
		db:  db,
		log: log.With(zap.String("repository", "achievement")),
	}
}

const achievementSelect = `SELECT id, title, description, image_url, sort_order, created_at FROM achievements`

func (r *achievementRepository) Create(ctx context.Context, a *entity.Achievement) error {
	query := `
		INSERT INTO achievements (id, title, description, image_url, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Description, a.ImageURL, a.SortOrder, a.CreatedAt); err != nil {
		r.log.Error("Failed to create achievement", zap.Error(err), zap.String("title", a.Title))
		return fmt.Errorf("create achievement %s: %w", a.Title, err)
	}
	return nil
}

func (r *achievementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Achievement, error) {
	rows, err := r.db.Query(ctx, achievementSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find achievement %s: %w", id.String(), err)
	}

	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.Achievement])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find achievement", zap.Error(err), zap.String("achievement_id", id.String()))
		return nil, fmt.Errorf("scan achievement %s: %w", id.String(), err)
	}
	return a, nil
}

func (r *achievementRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Achievement, error) {
	rows, err := r.db.Query(ctx, achievementSelect+` ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list achievements", zap.Error(err))
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	achievements, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Achievement])
	if err != nil {
		return nil, fmt.Errorf("scan achievement rows: %w", err)
	}
	return achievements, nil
}

func (r *achievementRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM achievements`).Scan(&total); err != nil {
		r.log.Error("Failed to count achievements", zap.Error(err))
		return 0, fmt.Errorf("count achievements: %w", err)
	}
	return total, nil
}

func (r *achievementRepository) Update(ctx context.Context, a *entity.Achievement) error {
	query := `UPDATE achievements SET title = $2, description = $3, image_url = $4, sort_order = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, a.ID, a.Title, a.Description, a.ImageURL, a.SortOrder)
	if err != nil {
		r.log.Error("Failed to update achievement", zap.Error(err), zap.String("achievement_id", a.ID.String()))
		return fmt.Errorf("update achievement %s: %w", a.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("achievement %s: %w", a.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *achievementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete achievement", zap.Error(err), zap.String("achievement_id", id.String()))
		return fmt.Errorf("delete achievement %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("achievement %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
