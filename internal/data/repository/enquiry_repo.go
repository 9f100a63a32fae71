package repository

import (
	"context"
	"fmt"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.ProjectEnquiry) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.ProjectEnquiry, error)
	Count(ctx context.Context) (int64, error)
}

type enquiryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnquiryRepository(db database.PgxIface, log *zap.Logger) EnquiryRepository {
	return &enquiryRepository{
		db:  db,
		log: log.With(zap.String("repository", "enquiry")),
	}
}

func (r *enquiryRepository) Create(ctx context.Context, e *entity.ProjectEnquiry) error {
	query := `
		INSERT INTO project_enquiries (id, project_id, identity_id, name, mobile, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query, e.ID, e.ProjectID, e.IdentityID, e.Name, e.Mobile, e.Subject, e.Message, e.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create enquiry",
			zap.Error(err),
			zap.String("project_id", e.ProjectID.String()),
		)
		return fmt.Errorf("create enquiry: %w", err)
	}
	return nil
}

func (r *enquiryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.ProjectEnquiry, error) {
	query := `
		SELECT id, project_id, identity_id, name, mobile, subject, message, created_at
		FROM project_enquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list enquiries", zap.Error(err))
		return nil, fmt.Errorf("list enquiries: %w", err)
	}

	enquiries, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.ProjectEnquiry])
	if err != nil {
		return nil, fmt.Errorf("scan enquiry rows: %w", err)
	}
	return enquiries, nil
}

func (r *enquiryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM project_enquiries`).Scan(&total); err != nil {
		r.log.Error("Failed to count enquiries", zap.Error(err))
		return 0, fmt.Errorf("count enquiries: %w", err)
	}
	return total, nil
}
