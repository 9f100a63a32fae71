package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.StaffUser) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error)
	FindByUsername(ctx context.Context, username string) (*entity.StaffUser, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.StaffUser) error {
	query := `
		INSERT INTO staff_users (id, username, password_hash, full_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.Username,
		staff.PasswordHash,
		staff.FullName,
		staff.IsActive,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create staff user",
			zap.Error(err),
			zap.String("username", staff.Username),
		)
		return fmt.Errorf("create staff %s: %w", staff.Username, err)
	}

	return nil
}

func (r *staffRepository) findOne(ctx context.Context, where string, arg any) (*entity.StaffUser, error) {
	query := `
		SELECT id, username, password_hash, full_name, is_active, last_login_at, created_at, updated_at
		FROM staff_users
		WHERE ` + where

	var staff entity.StaffUser
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.Username,
		&staff.PasswordHash,
		&staff.FullName,
		&staff.IsActive,
		&staff.LastLoginAt,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	staff, err := r.findOne(ctx, "id = $1", id)
	if err != nil {
		r.log.Error("Failed to find staff by ID", zap.Error(err), zap.String("staff_id", id.String()))
		return nil, fmt.Errorf("find staff by ID %s: %w", id.String(), err)
	}
	return staff, nil
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*entity.StaffUser, error) {
	staff, err := r.findOne(ctx, "username = $1", username)
	if err != nil {
		r.log.Error("Failed to find staff by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find staff by username %s: %w", username, err)
	}
	return staff, nil
}

func (r *staffRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.db.Exec(ctx, `UPDATE staff_users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		r.log.Error("Failed to stamp staff last login", zap.Error(err), zap.String("staff_id", id.String()))
		return fmt.Errorf("touch staff last login %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
