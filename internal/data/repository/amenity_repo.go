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

// ==================== PROJECT AMENITY ====================

type ProjectAmenityRepository interface {
	Create(ctx context.Context, amenity *entity.ProjectAmenity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProjectAmenity, error)
	FindAll(ctx context.Context, projectID *uuid.UUID, limit, offset int) ([]*entity.ProjectAmenity, error)
	Count(ctx context.Context, projectID *uuid.UUID) (int64, error)
	Update(ctx context.Context, amenity *entity.ProjectAmenity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectAmenityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProjectAmenityRepository(db database.PgxIface, log *zap.Logger) ProjectAmenityRepository {
	return &projectAmenityRepository{
		db:  db,
		log: log.With(zap.String("repository", "project_amenity")),
	}
}

const projectAmenitySelect = `SELECT id, project_id, name, icon, sort_order, created_at FROM project_amenities`

func (r *projectAmenityRepository) Create(ctx context.Context, amenity *entity.ProjectAmenity) error {
	query := `
		INSERT INTO project_amenities (id, project_id, name, icon, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		amenity.ID, amenity.ProjectID, amenity.Name, amenity.Icon, amenity.SortOrder, amenity.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create project amenity", zap.Error(err), zap.String("name", amenity.Name))
		return fmt.Errorf("create project amenity %s: %w", amenity.Name, err)
	}
	return nil
}

func (r *projectAmenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProjectAmenity, error) {
	rows, err := r.db.Query(ctx, projectAmenitySelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find project amenity %s: %w", id.String(), err)
	}

	amenity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.ProjectAmenity])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find project amenity", zap.Error(err), zap.String("amenity_id", id.String()))
		return nil, fmt.Errorf("scan project amenity %s: %w", id.String(), err)
	}
	return amenity, nil
}

func (r *projectAmenityRepository) FindAll(ctx context.Context, projectID *uuid.UUID, limit, offset int) ([]*entity.ProjectAmenity, error) {
	f := parentFilter("project_id", projectID)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, projectAmenitySelect+f.where()+` ORDER BY sort_order, name`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list project amenities", zap.Error(err))
		return nil, fmt.Errorf("list project amenities: %w", err)
	}

	amenities, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.ProjectAmenity])
	if err != nil {
		return nil, fmt.Errorf("scan project amenity rows: %w", err)
	}
	return amenities, nil
}

func (r *projectAmenityRepository) Count(ctx context.Context, projectID *uuid.UUID) (int64, error) {
	f := parentFilter("project_id", projectID)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM project_amenities`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count project amenities", zap.Error(err))
		return 0, fmt.Errorf("count project amenities: %w", err)
	}
	return total, nil
}

func (r *projectAmenityRepository) Update(ctx context.Context, amenity *entity.ProjectAmenity) error {
	query := `UPDATE project_amenities SET project_id = $2, name = $3, icon = $4, sort_order = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, amenity.ID, amenity.ProjectID, amenity.Name, amenity.Icon, amenity.SortOrder)
	if err != nil {
		r.log.Error("Failed to update project amenity", zap.Error(err), zap.String("amenity_id", amenity.ID.String()))
		return fmt.Errorf("update project amenity %s: %w", amenity.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project amenity %s: %w", amenity.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *projectAmenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM project_amenities WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete project amenity", zap.Error(err), zap.String("amenity_id", id.String()))
		return fmt.Errorf("delete project amenity %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project amenity %s: %w", id.String(), ErrNotFound)
	}
	return nil
}

// ==================== TOWER AMENITY ====================

type TowerAmenityRepository interface {
	Create(ctx context.Context, amenity *entity.TowerAmenity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TowerAmenity, error)
	FindAll(ctx context.Context, towerID *uuid.UUID, limit, offset int) ([]*entity.TowerAmenity, error)
	Count(ctx context.Context, towerID *uuid.UUID) (int64, error)
	Update(ctx context.Context, amenity *entity.TowerAmenity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type towerAmenityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTowerAmenityRepository(db database.PgxIface, log *zap.Logger) TowerAmenityRepository {
	return &towerAmenityRepository{
		db:  db,
		log: log.With(zap.String("repository", "tower_amenity")),
	}
}

const towerAmenitySelect = `SELECT id, tower_id, name, icon, sort_order, created_at FROM tower_amenities`

func (r *towerAmenityRepository) Create(ctx context.Context, amenity *entity.TowerAmenity) error {
	query := `
		INSERT INTO tower_amenities (id, tower_id, name, icon, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		amenity.ID, amenity.TowerID, amenity.Name, amenity.Icon, amenity.SortOrder, amenity.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create tower amenity", zap.Error(err), zap.String("name", amenity.Name))
		return fmt.Errorf("create tower amenity %s: %w", amenity.Name, err)
	}
	return nil
}

func (r *towerAmenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TowerAmenity, error) {
	rows, err := r.db.Query(ctx, towerAmenitySelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find tower amenity %s: %w", id.String(), err)
	}

	amenity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.TowerAmenity])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tower amenity", zap.Error(err), zap.String("amenity_id", id.String()))
		return nil, fmt.Errorf("scan tower amenity %s: %w", id.String(), err)
	}
	return amenity, nil
}

func (r *towerAmenityRepository) FindAll(ctx context.Context, towerID *uuid.UUID, limit, offset int) ([]*entity.TowerAmenity, error) {
	f := parentFilter("tower_id", towerID)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, towerAmenitySelect+f.where()+` ORDER BY sort_order, name`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list tower amenities", zap.Error(err))
		return nil, fmt.Errorf("list tower amenities: %w", err)
	}

	amenities, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.TowerAmenity])
	if err != nil {
		return nil, fmt.Errorf("scan tower amenity rows: %w", err)
	}
	return amenities, nil
}

func (r *towerAmenityRepository) Count(ctx context.Context, towerID *uuid.UUID) (int64, error) {
	f := parentFilter("tower_id", towerID)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tower_amenities`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count tower amenities", zap.Error(err))
		return 0, fmt.Errorf("count tower amenities: %w", err)
	}
	return total, nil
}

func (r *towerAmenityRepository) Update(ctx context.Context, amenity *entity.TowerAmenity) error {
	query := `UPDATE tower_amenities SET tower_id = $2, name = $3, icon = $4, sort_order = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, amenity.ID, amenity.TowerID, amenity.Name, amenity.Icon, amenity.SortOrder)
	if err != nil {
		r.log.Error("Failed to update tower amenity", zap.Error(err), zap.String("amenity_id", amenity.ID.String()))
		return fmt.Errorf("update tower amenity %s: %w", amenity.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tower amenity %s: %w", amenity.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *towerAmenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tower_amenities WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete tower amenity", zap.Error(err), zap.String("amenity_id", id.String()))
		return fmt.Errorf("delete tower amenity %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tower amenity %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
