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

type TowerFilter struct {
	ProjectID  *uuid.UUID
	ActiveOnly bool
}

type TowerRepository interface {
	Create(ctx context.Context, tower *entity.Tower) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tower, error)
	FindAll(ctx context.Context, filter TowerFilter, limit, offset int) ([]*entity.Tower, error)
	Count(ctx context.Context, filter TowerFilter) (int64, error)
	Update(ctx context.Context, tower *entity.Tower) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type towerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTowerRepository(db database.PgxIface, log *zap.Logger) TowerRepository {
	return &towerRepository{
		db:  db,
		log: log.With(zap.String("repository", "tower")),
	}
}

const towerSelect = `
	SELECT t.id, t.project_id, t.name, t.tower_number, t.total_floors, t.parking_floors,
	       t.residential_floors, t.refuge_floors, t.per_floor_flats, t.total_lifts, t.total_stairs,
	       t.start_date, t.completion_date, t.rera_completion_date, t.rera_number,
	       t.booking_status, t.is_active, t.sort_order, t.created_at, t.updated_at,
	       (SELECT COUNT(*) FROM flats f WHERE f.tower_id = t.id AND f.status = 'available') AS available_flats,
	       (SELECT COUNT(*) FROM flats f WHERE f.tower_id = t.id AND f.status = 'sold') AS sold_flats
	FROM towers t`

func (r *towerRepository) Create(ctx context.Context, tower *entity.Tower) error {
	query := `
		INSERT INTO towers (id, project_id, name, tower_number, total_floors, parking_floors,
		                    residential_floors, refuge_floors, per_floor_flats, total_lifts, total_stairs,
		                    start_date, completion_date, rera_completion_date, rera_number,
		                    booking_status, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.Exec(ctx, query,
		tower.ID, tower.ProjectID, tower.Name, tower.TowerNumber, tower.TotalFloors, tower.ParkingFloors,
		tower.ResidentialFloors, tower.RefugeFloors, tower.PerFloorFlats, tower.TotalLifts, tower.TotalStairs,
		tower.StartDate, tower.CompletionDate, tower.RERACompletionDate, tower.RERANumber,
		tower.BookingStatus, tower.IsActive, tower.SortOrder, tower.CreatedAt, tower.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create tower",
			zap.Error(err),
			zap.String("name", tower.Name),
			zap.String("project_id", tower.ProjectID.String()),
		)
		return fmt.Errorf("create tower %s: %w", tower.Name, err)
	}
	return nil
}

func (r *towerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tower, error) {
	rows, err := r.db.Query(ctx, towerSelect+` WHERE t.id = $1`, id)
	if err != nil {
		r.log.Error("Failed to find tower by ID", zap.Error(err), zap.String("tower_id", id.String()))
		return nil, fmt.Errorf("find tower by ID %s: %w", id.String(), err)
	}

	tower, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.Tower])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan tower %s: %w", id.String(), err)
	}
	return tower, nil
}

func towerFilter(filter TowerFilter) *queryFilter {
	f := newQueryFilter()
	if filter.ProjectID != nil {
		f.and("t.project_id = %s", *filter.ProjectID)
	}
	if filter.ActiveOnly {
		f.and("t.is_active = true")
	}
	return f
}

func (r *towerRepository) FindAll(ctx context.Context, filter TowerFilter, limit, offset int) ([]*entity.Tower, error) {
	f := towerFilter(filter)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, towerSelect+f.where()+` ORDER BY t.sort_order, t.name`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list towers", zap.Error(err))
		return nil, fmt.Errorf("list towers: %w", err)
	}

	towers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Tower])
	if err != nil {
		r.log.Error("Failed to scan tower rows", zap.Error(err))
		return nil, fmt.Errorf("scan tower rows: %w", err)
	}
	return towers, nil
}

func (r *towerRepository) Count(ctx context.Context, filter TowerFilter) (int64, error) {
	f := towerFilter(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM towers t`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count towers", zap.Error(err))
		return 0, fmt.Errorf("count towers: %w", err)
	}
	return total, nil
}

func (r *towerRepository) Update(ctx context.Context, tower *entity.Tower) error {
	query := `
		UPDATE towers
		SET project_id = $2, name = $3, tower_number = $4, total_floors = $5, parking_floors = $6,
		    residential_floors = $7, refuge_floors = $8, per_floor_flats = $9, total_lifts = $10,
		    total_stairs = $11, start_date = $12, completion_date = $13, rera_completion_date = $14,
		    rera_number = $15, booking_status = $16, is_active = $17, sort_order = $18, updated_at = $19
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tower.ID, tower.ProjectID, tower.Name, tower.TowerNumber, tower.TotalFloors, tower.ParkingFloors,
		tower.ResidentialFloors, tower.RefugeFloors, tower.PerFloorFlats, tower.TotalLifts,
		tower.TotalStairs, tower.StartDate, tower.CompletionDate, tower.RERACompletionDate,
		tower.RERANumber, tower.BookingStatus, tower.IsActive, tower.SortOrder, tower.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update tower", zap.Error(err), zap.String("tower_id", tower.ID.String()))
		return fmt.Errorf("update tower %s: %w", tower.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tower %s: %w", tower.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *towerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM towers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete tower", zap.Error(err), zap.String("tower_id", id.String()))
		return fmt.Errorf("delete tower %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("tower %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
