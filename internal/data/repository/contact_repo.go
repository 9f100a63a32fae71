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

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	FindAll(ctx context.Context, window entity.TimeRange, limit, offset int) ([]*entity.Contact, error)
	Count(ctx context.Context, window entity.TimeRange) (int64, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	Stats(ctx context.Context, windows entity.LeadWindows) (*entity.LeadStats, error)
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

const contactSelect = `
		SELECT c.id, c.project_id, c.name, c.email, c.phone, c.subject, c.message,
		       c.read, c.created_at, p.title
		FROM contacts c
		LEFT JOIN projects p ON p.id = c.project_id`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var contact entity.Contact
	err := row.Scan(
		&contact.ID,
		&contact.ProjectID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Subject,
		&contact.Message,
		&contact.Read,
		&contact.CreatedAt,
		&contact.ProjectTitle,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, project_id, name, email, phone, subject, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		contact.ID,
		contact.ProjectID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.Read,
		contact.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create contact",
			zap.Error(err),
			zap.String("name", contact.Name),
		)
		return fmt.Errorf("create contact %s: %w", contact.Name, err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := scanContact(r.db.QueryRow(ctx, contactSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact by ID",
			zap.Error(err),
			zap.String("contact_id", id.String()),
		)
		return nil, fmt.Errorf("find contact by ID %s: %w", id.String(), err)
	}
	return contact, nil
}

func windowFilter(window entity.TimeRange) *queryFilter {
	f := newQueryFilter()
	if window.From != nil {
		f.and("c.created_at >= %s", *window.From)
	}
	if window.To != nil {
		f.and("c.created_at < %s", *window.To)
	}
	return f
}

func (r *contactRepository) FindAll(ctx context.Context, window entity.TimeRange, limit, offset int) ([]*entity.Contact, error) {
	f := windowFilter(window)
	pageClause, args := f.page(limit, offset)
	query := contactSelect + f.where() + ` ORDER BY c.created_at DESC` + pageClause

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list contacts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list contacts limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	contacts := []*entity.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			r.log.Error("Failed to scan contact row", zap.Error(err))
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) Count(ctx context.Context, window entity.TimeRange) (int64, error) {
	f := windowFilter(window)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts c`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count contacts", zap.Error(err))
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET project_id = $2, name = $3, email = $4, phone = $5, subject = $6, message = $7, read = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		contact.ID,
		contact.ProjectID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.Read,
	)
	if err != nil {
		r.log.Error("Failed to update contact", zap.Error(err), zap.String("contact_id", contact.ID.String()))
		return fmt.Errorf("update contact %s: %w", contact.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", contact.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete contact", zap.Error(err), zap.String("contact_id", id.String()))
		return fmt.Errorf("delete contact %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id.String(), ErrNotFound)
	}
	return nil
}

// MarkRead is idempotent. The bool is false when the lead does not exist.
func (r *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `UPDATE contacts SET read = true WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to mark contact read", zap.Error(err), zap.String("contact_id", id.String()))
		return false, fmt.Errorf("mark contact %s read: %w", id.String(), err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *contactRepository) Stats(ctx context.Context, windows entity.LeadWindows) (*entity.LeadStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= $1 AND created_at < $5),
			COUNT(*) FILTER (WHERE created_at >= $2 AND created_at < $1),
			COUNT(*) FILTER (WHERE created_at >= $3),
			COUNT(*) FILTER (WHERE created_at >= $4),
			COUNT(*),
			COUNT(*) FILTER (WHERE read = false)
		FROM contacts
	`

	var stats entity.LeadStats
	err := r.db.QueryRow(ctx, query,
		windows.TodayStart,
		windows.YesterdayStart,
		windows.WeekStart,
		windows.MonthStart,
		windows.TomorrowStart(),
	).Scan(
		&stats.Today,
		&stats.Yesterday,
		&stats.LastWeek,
		&stats.LastMonth,
		&stats.Total,
		&stats.Unread,
	)
	if err != nil {
		r.log.Error("Failed to compute lead stats", zap.Error(err))
		return nil, fmt.Errorf("lead stats: %w", err)
	}

	return &stats, nil
}
