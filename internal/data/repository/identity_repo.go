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

type IdentityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	FindByMobile(ctx context.Context, mobile string) (*entity.Identity, error)
	EnsureByMobile(ctx context.Context, mobile string, now time.Time) (*entity.Identity, error)
	CompleteRegistration(ctx context.Context, identity *entity.Identity) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type identityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewIdentityRepository(db database.PgxIface, log *zap.Logger) IdentityRepository {
	return &identityRepository{
		db:  db,
		log: log.With(zap.String("repository", "identity")),
	}
}

const identityColumns = `id, mobile, first_name, last_name, email, is_active,
		       is_registered, last_login_at, created_at, updated_at`

func scanIdentity(row pgx.Row) (*entity.Identity, error) {
	var identity entity.Identity
	err := row.Scan(
		&identity.ID,
		&identity.Mobile,
		&identity.FirstName,
		&identity.LastName,
		&identity.Email,
		&identity.IsActive,
		&identity.IsRegistered,
		&identity.LastLoginAt,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find identity by ID",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return nil, fmt.Errorf("find identity by ID %s: %w", id.String(), err)
	}

	return identity, nil
}

func (r *identityRepository) FindByMobile(ctx context.Context, mobile string) (*entity.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE mobile = $1`

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, mobile))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find identity by mobile",
			zap.Error(err),
			zap.String("mobile", mobile),
		)
		return nil, fmt.Errorf("find identity by mobile %s: %w", mobile, err)
	}

	return identity, nil
}

// EnsureByMobile returns the identity for mobile, creating an unregistered one
// if none exists. Concurrent callers converge on the same row.
func (r *identityRepository) EnsureByMobile(ctx context.Context, mobile string, now time.Time) (*entity.Identity, error) {
	query := `
		INSERT INTO identities (id, mobile, is_active, is_registered, created_at, updated_at)
		VALUES ($1, $2, true, false, $3, $3)
		ON CONFLICT (mobile) DO UPDATE SET mobile = EXCLUDED.mobile
		RETURNING ` + identityColumns

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, uuid.New(), mobile, now))
	if err != nil {
		r.log.Error("Failed to upsert identity",
			zap.Error(err),
			zap.String("mobile", mobile),
		)
		return nil, fmt.Errorf("upsert identity %s: %w", mobile, err)
	}

	return identity, nil
}

func (r *identityRepository) CompleteRegistration(ctx context.Context, identity *entity.Identity) error {
	query := `
		UPDATE identities
		SET first_name = $2, last_name = $3, email = $4, is_registered = true,
		    last_login_at = $5, updated_at = $6
		WHERE id = $1 AND is_registered = false
	`

	result, err := r.db.Exec(ctx, query,
		identity.ID,
		identity.FirstName,
		identity.LastName,
		identity.Email,
		identity.LastLoginAt,
		identity.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to complete registration",
			zap.Error(err),
			zap.String("identity_id", identity.ID.String()),
		)
		return fmt.Errorf("complete registration %s: %w", identity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		// bedakan row tidak ada vs sudah registrasi duluan
		var exists bool
		err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM identities WHERE id = $1)`, identity.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check identity %s: %w", identity.ID.String(), err)
		}
		if exists {
			return fmt.Errorf("identity %s: %w", identity.ID.String(), ErrAlreadyRegistered)
		}
		return fmt.Errorf("identity %s: %w", identity.ID.String(), ErrNotFound)
	}

	identity.IsRegistered = true
	return nil
}

func (r *identityRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE identities SET last_login_at = $2, updated_at = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		r.log.Error("Failed to stamp last login",
			zap.Error(err),
			zap.String("identity_id", id.String()),
		)
		return fmt.Errorf("touch last login %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("identity %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
