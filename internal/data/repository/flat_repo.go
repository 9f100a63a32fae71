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

type FlatFilter struct {
	TowerID  *uuid.UUID
	FlatType *string
	Status   *string
	Floor    *int
	Search   *string
}

type FlatRepository interface {
	Create(ctx context.Context, flat *entity.Flat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flat, error)
	FindAll(ctx context.Context, filter FlatFilter, limit, offset int) ([]*entity.Flat, error)
	Count(ctx context.Context, filter FlatFilter) (int64, error)
	Update(ctx context.Context, flat *entity.Flat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type flatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlatRepository(db database.PgxIface, log *zap.Logger) FlatRepository {
	return &flatRepository{
		db:  db,
		log: log.With(zap.String("repository", "flat")),
	}
}

const flatSelect = `
	SELECT id, tower_id, flat_number, flat_type, floor_number, carpet_area, built_up_area,
	       super_area, price, price_per_sqft, status, facing, balcony, parking, description,
	       created_at, updated_at
	FROM flats`

func flatArgs(f *entity.Flat) []any {
	return []any{
		f.ID, f.TowerID, f.FlatNumber, f.FlatType, f.FloorNumber, f.CarpetArea, f.BuiltUpArea,
		f.SuperArea, f.Price, f.PricePerSqft, f.Status, f.Facing, f.Balcony, f.Parking, f.Description,
	}
}

func (r *flatRepository) Create(ctx context.Context, flat *entity.Flat) error {
	query := `
		INSERT INTO flats (id, tower_id, flat_number, flat_type, floor_number, carpet_area, built_up_area,
		                   super_area, price, price_per_sqft, status, facing, balcony, parking, description,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	args := append(flatArgs(flat), flat.CreatedAt, flat.UpdatedAt)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create flat",
			zap.Error(err),
			zap.String("flat_number", flat.FlatNumber),
			zap.String("tower_id", flat.TowerID.String()),
		)
		return fmt.Errorf("create flat %s: %w", flat.FlatNumber, err)
	}
	return nil
}

func (r *flatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flat, error) {
	rows, err := r.db.Query(ctx, flatSelect+` WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to find flat by ID", zap.Error(err), zap.String("flat_id", id.String()))
		return nil, fmt.Errorf("find flat by ID %s: %w", id.String(), err)
	}

	flat, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.Flat])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan flat %s: %w", id.String(), err)
	}
	return flat, nil
}

func flatFilter(filter FlatFilter) *queryFilter {
	f := newQueryFilter()
	if filter.TowerID != nil {
		f.and("tower_id = %s", *filter.TowerID)
	}
	if filter.FlatType != nil {
		f.and("flat_type = %s", *filter.FlatType)
	}
	if filter.Status != nil {
		f.and("status = %s", *filter.Status)
	}
	if filter.Floor != nil {
		f.and("floor_number = %s", *filter.Floor)
	}
	if filter.Search != nil {
		f.and("(flat_number ILIKE %[1]s ESCAPE '\\' OR flat_type ILIKE %[1]s ESCAPE '\\')", like(*filter.Search))
	}
	return f
}

func (r *flatRepository) FindAll(ctx context.Context, filter FlatFilter, limit, offset int) ([]*entity.Flat, error) {
	f := flatFilter(filter)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, flatSelect+f.where()+` ORDER BY floor_number, flat_number`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list flats", zap.Error(err))
		return nil, fmt.Errorf("list flats: %w", err)
	}

	flats, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Flat])
	if err != nil {
		r.log.Error("Failed to scan flat rows", zap.Error(err))
		return nil, fmt.Errorf("scan flat rows: %w", err)
	}
	return flats, nil
}

func (r *flatRepository) Count(ctx context.Context, filter FlatFilter) (int64, error) {
	f := flatFilter(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flats`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count flats", zap.Error(err))
		return 0, fmt.Errorf("count flats: %w", err)
	}
	return total, nil
}

func (r *flatRepository) Update(ctx context.Context, flat *entity.Flat) error {
	query := `
		UPDATE flats
		SET tower_id = $2, flat_number = $3, flat_type = $4, floor_number = $5, carpet_area = $6,
		    built_up_area = $7, super_area = $8, price = $9, price_per_sqft = $10, status = $11,
		    facing = $12, balcony = $13, parking = $14, description = $15, updated_at = $16
		WHERE id = $1
	`

	args := append(flatArgs(flat), flat.UpdatedAt)
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update flat", zap.Error(err), zap.String("flat_id", flat.ID.String()))
		return fmt.Errorf("update flat %s: %w", flat.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("flat %s: %w", flat.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *flatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM flats WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete flat", zap.Error(err), zap.String("flat_id", id.String()))
		return fmt.Errorf("delete flat %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("flat %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
