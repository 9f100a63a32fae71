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

type ProjectFilter struct {
	PropertyType    *string
	TransactionType *string
	Featured        *bool
	IsHot           *bool
	CityID          *uuid.UUID
	City            *string
	ProjectStatus   *string
	FlatType        *string
	Search          *string
	Ordering        string
}

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindAll(ctx context.Context, filter ProjectFilter, limit, offset int) ([]*entity.Project, error)
	Count(ctx context.Context, filter ProjectFilter) (int64, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}

type projectRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProjectRepository(db database.PgxIface, log *zap.Logger) ProjectRepository {
	return &projectRepository{
		db:  db,
		log: log.With(zap.String("repository", "project")),
	}
}

const projectSelect = `
	SELECT p.id, p.title, p.property_type, p.transaction_type, p.is_hot, p.project_status,
	       p.available_flat_types, p.location, p.city_id, p.city_name, p.state, p.description,
	       p.cover_image_url, p.price, p.views, p.featured, p.id_number, p.about_listing,
	       p.map_location, p.rera_number, p.land_area, p.amenities_area, p.total_units,
	       p.total_towers, p.developer_name, p.specifications, p.created_at, p.updated_at,
	       c.name AS city_display_name,
	       (SELECT COUNT(*) FROM towers t WHERE t.project_id = p.id) AS towers_count
	FROM projects p
	LEFT JOIN cities c ON c.id = p.city_id`

var projectOrdering = map[string]string{
	"created_at": "p.created_at",
	"price":      "p.price",
	"views":      "p.views",
	"title":      "p.title",
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (id, title, property_type, transaction_type, is_hot, project_status,
		                      available_flat_types, location, city_id, city_name, state, description,
		                      cover_image_url, price, views, featured, id_number, about_listing,
		                      map_location, rera_number, land_area, amenities_area, total_units,
		                      total_towers, developer_name, specifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		        $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.db.Exec(ctx, query, projectArgs(project)...)
	if err != nil {
		r.log.Error("Failed to create project", zap.Error(err), zap.String("title", project.Title))
		return fmt.Errorf("create project %s: %w", project.Title, err)
	}
	return nil
}

func projectArgs(p *entity.Project) []any {
	specs := p.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	return []any{
		p.ID, p.Title, p.PropertyType, p.TransactionType, p.IsHot, p.ProjectStatus,
		p.AvailableFlatTypes, p.Location, p.CityID, p.CityName, p.State, p.Description,
		p.CoverImageURL, p.Price, p.Views, p.Featured, p.IDNumber, p.AboutListing,
		p.MapLocation, p.RERANumber, p.LandArea, p.AmenitiesArea, p.TotalUnits,
		p.TotalTowers, p.DeveloperName, specs, p.CreatedAt, p.UpdatedAt,
	}
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	rows, err := r.db.Query(ctx, projectSelect+` WHERE p.id = $1`, id)
	if err != nil {
		r.log.Error("Failed to find project by ID", zap.Error(err), zap.String("project_id", id.String()))
		return nil, fmt.Errorf("find project by ID %s: %w", id.String(), err)
	}

	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.Project])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan project %s: %w", id.String(), err)
	}
	return project, nil
}

func projectFilter(filter ProjectFilter) *queryFilter {
	f := newQueryFilter()
	if filter.PropertyType != nil {
		f.and("p.property_type = %s", *filter.PropertyType)
	}
	if filter.TransactionType != nil {
		f.and("p.transaction_type = %s", *filter.TransactionType)
	}
	if filter.Featured != nil {
		f.and("p.featured = %s", *filter.Featured)
	}
	if filter.IsHot != nil {
		f.and("p.is_hot = %s", *filter.IsHot)
	}
	if filter.CityID != nil {
		f.and("p.city_id = %s", *filter.CityID)
	}
	if filter.City != nil {
		f.and("(c.name ILIKE %[1]s ESCAPE '\\' OR p.city_name ILIKE %[1]s ESCAPE '\\')", like(*filter.City))
	}
	if filter.ProjectStatus != nil {
		f.and("p.project_status = %s", *filter.ProjectStatus)
	}
	if filter.FlatType != nil {
		// Cocok dari daftar tipe di project atau dari flat yang ada di tower
		f.and(`(p.available_flat_types ILIKE %[1]s ESCAPE '\' OR EXISTS (
			SELECT 1 FROM flats fl JOIN towers tw ON tw.id = fl.tower_id
			WHERE tw.project_id = p.id AND fl.flat_type = %[2]s))`,
			like(*filter.FlatType), *filter.FlatType)
	}
	if filter.Search != nil {
		f.and("(p.title ILIKE %[1]s ESCAPE '\\' OR p.location ILIKE %[1]s ESCAPE '\\' OR p.city_name ILIKE %[1]s ESCAPE '\\' OR c.name ILIKE %[1]s ESCAPE '\\')",
			like(*filter.Search))
	}
	return f
}

func (r *projectRepository) FindAll(ctx context.Context, filter ProjectFilter, limit, offset int) ([]*entity.Project, error) {
	f := projectFilter(filter)
	pageClause, args := f.page(limit, offset)
	order := orderBy(filter.Ordering, projectOrdering, "p.created_at DESC")

	rows, err := r.db.Query(ctx, projectSelect+f.where()+` ORDER BY `+order+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list projects",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Project])
	if err != nil {
		r.log.Error("Failed to scan project rows", zap.Error(err))
		return nil, fmt.Errorf("scan project rows: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) Count(ctx context.Context, filter ProjectFilter) (int64, error) {
	f := projectFilter(filter)
	query := `SELECT COUNT(*) FROM projects p LEFT JOIN cities c ON c.id = p.city_id` + f.where()

	var total int64
	if err := r.db.QueryRow(ctx, query, f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count projects", zap.Error(err))
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return total, nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET title = $2, property_type = $3, transaction_type = $4, is_hot = $5, project_status = $6,
		    available_flat_types = $7, location = $8, city_id = $9, city_name = $10, state = $11,
		    description = $12, cover_image_url = $13, price = $14, views = $15, featured = $16,
		    id_number = $17, about_listing = $18, map_location = $19, rera_number = $20,
		    land_area = $21, amenities_area = $22, total_units = $23, total_towers = $24,
		    developer_name = $25, specifications = $26, updated_at = $27
		WHERE id = $1
	`

	args := projectArgs(project)
	args = append(args[:26], project.UpdatedAt)

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update project", zap.Error(err), zap.String("project_id", project.ID.String()))
		return fmt.Errorf("update project %s: %w", project.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", project.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete project", zap.Error(err), zap.String("project_id", id.String()))
		return fmt.Errorf("delete project %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id.String(), ErrNotFound)
	}
	r.log.Info("Project deleted", zap.String("project_id", id.String()))
	return nil
}

func (r *projectRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.db.QueryRow(ctx, `UPDATE projects SET views = views + 1 WHERE id = $1 RETURNING views`, id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("project %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to increment project views", zap.Error(err), zap.String("project_id", id.String()))
		return 0, fmt.Errorf("increment project views %s: %w", id.String(), err)
	}
	return views, nil
}
