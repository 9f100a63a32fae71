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

type ProjectImageRepository interface {
	Create(ctx context.Context, image *entity.ProjectImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProjectImage, error)
	FindAll(ctx context.Context, projectID *uuid.UUID, limit, offset int) ([]*entity.ProjectImage, error)
	Count(ctx context.Context, projectID *uuid.UUID) (int64, error)
	Update(ctx context.Context, image *entity.ProjectImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectImageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProjectImageRepository(db database.PgxIface, log *zap.Logger) ProjectImageRepository {
	return &projectImageRepository{
		db:  db,
		log: log.With(zap.String("repository", "project_image")),
	}
}

const projectImageSelect = `SELECT id, project_id, image_url, title, category, sort_order, created_at FROM project_images`

func (r *projectImageRepository) Create(ctx context.Context, image *entity.ProjectImage) error {
	query := `
		INSERT INTO project_images (id, project_id, image_url, title, category, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		image.ID, image.ProjectID, image.ImageURL, image.Title, image.Category, image.SortOrder, image.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create project image", zap.Error(err), zap.String("project_id", image.ProjectID.String()))
		return fmt.Errorf("create project image: %w", err)
	}
	return nil
}

func (r *projectImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProjectImage, error) {
	rows, err := r.db.Query(ctx, projectImageSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find project image %s: %w", id.String(), err)
	}

	image, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.ProjectImage])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find project image", zap.Error(err), zap.String("image_id", id.String()))
		return nil, fmt.Errorf("scan project image %s: %w", id.String(), err)
	}
	return image, nil
}

func parentFilter(column string, parentID *uuid.UUID) *queryFilter {
	f := newQueryFilter()
	if parentID != nil {
		f.and(column+" = %s", *parentID)
	}
	return f
}

func (r *projectImageRepository) FindAll(ctx context.Context, projectID *uuid.UUID, limit, offset int) ([]*entity.ProjectImage, error) {
	f := parentFilter("project_id", projectID)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, projectImageSelect+f.where()+` ORDER BY sort_order, created_at`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list project images", zap.Error(err))
		return nil, fmt.Errorf("list project images: %w", err)
	}

	images, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.ProjectImage])
	if err != nil {
		return nil, fmt.Errorf("scan project image rows: %w", err)
	}
	return images, nil
}

func (r *projectImageRepository) Count(ctx context.Context, projectID *uuid.UUID) (int64, error) {
	f := parentFilter("project_id", projectID)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM project_images`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count project images", zap.Error(err))
		return 0, fmt.Errorf("count project images: %w", err)
	}
	return total, nil
}

func (r *projectImageRepository) Update(ctx context.Context, image *entity.ProjectImage) error {
	query := `
		UPDATE project_images
		SET project_id = $2, image_url = $3, title = $4, category = $5, sort_order = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		image.ID, image.ProjectID, image.ImageURL, image.Title, image.Category, image.SortOrder,
	)
	if err != nil {
		r.log.Error("Failed to update project image", zap.Error(err), zap.String("image_id", image.ID.String()))
		return fmt.Errorf("update project image %s: %w", image.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project image %s: %w", image.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *projectImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM project_images WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete project image", zap.Error(err), zap.String("image_id", id.String()))
		return fmt.Errorf("delete project image %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project image %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
