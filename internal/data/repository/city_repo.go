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

type CityFilter struct {
	ActiveOnly bool
	Search     *string
}

type CityRepository interface {
	Create(ctx context.Context, city *entity.City) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)
	FindAll(ctx context.Context, filter CityFilter, limit, offset int) ([]*entity.City, error)
	Count(ctx context.Context, filter CityFilter) (int64, error)
	Update(ctx context.Context, city *entity.City) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCityRepository(db database.PgxIface, log *zap.Logger) CityRepository {
	return &cityRepository{
		db:  db,
		log: log.With(zap.String("repository", "city")),
	}
}

const citySelect = `SELECT id, name, state, is_active, sort_order, created_at, updated_at FROM cities`

func (r *cityRepository) Create(ctx context.Context, city *entity.City) error {
	query := `
		INSERT INTO cities (id, name, state, is_active, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		city.ID,
		city.Name,
		city.State,
		city.IsActive,
		city.SortOrder,
		city.CreatedAt,
		city.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create city", zap.Error(err), zap.String("name", city.Name))
		return fmt.Errorf("create city %s: %w", city.Name, err)
	}
	return nil
}

func (r *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	rows, err := r.db.Query(ctx, citySelect+` WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to find city by ID", zap.Error(err), zap.String("city_id", id.String()))
		return nil, fmt.Errorf("find city by ID %s: %w", id.String(), err)
	}

	city, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.City])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan city %s: %w", id.String(), err)
	}
	return city, nil
}

func cityFilter(filter CityFilter) *queryFilter {
	f := newQueryFilter()
	if filter.ActiveOnly {
		f.and("is_active = true")
	}
	if filter.Search != nil {
		f.and("(name ILIKE %[1]s ESCAPE '\\' OR state ILIKE %[1]s ESCAPE '\\')", like(*filter.Search))
	}
	return f
}

func (r *cityRepository) FindAll(ctx context.Context, filter CityFilter, limit, offset int) ([]*entity.City, error) {
	f := cityFilter(filter)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, citySelect+f.where()+` ORDER BY sort_order, name`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list cities", zap.Error(err))
		return nil, fmt.Errorf("list cities: %w", err)
	}

	cities, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.City])
	if err != nil {
		r.log.Error("Failed to scan city rows", zap.Error(err))
		return nil, fmt.Errorf("scan city rows: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Count(ctx context.Context, filter CityFilter) (int64, error) {
	f := cityFilter(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cities`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count cities", zap.Error(err))
		return 0, fmt.Errorf("count cities: %w", err)
	}
	return total, nil
}

func (r *cityRepository) Update(ctx context.Context, city *entity.City) error {
	query := `
		UPDATE cities
		SET name = $2, state = $3, is_active = $4, sort_order = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		city.ID,
		city.Name,
		city.State,
		city.IsActive,
		city.SortOrder,
		city.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update city", zap.Error(err), zap.String("city_id", city.ID.String()))
		return fmt.Errorf("update city %s: %w", city.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("city %s: %w", city.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete city", zap.Error(err), zap.String("city_id", id.String()))
		return fmt.Errorf("delete city %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("city %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
