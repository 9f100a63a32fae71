package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Issue(ctx context.Context, otp *entity.OTP) error
	Consume(ctx context.Context, mobile, codeHash string, purposes []entity.OTPPurpose, now time.Time) (*entity.OTP, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// Issue invalidates every pending code for the mobile and inserts otp, in one
// transaction serialized per mobile by an advisory lock.
func (r *otpRepository) Issue(ctx context.Context, otp *entity.OTP) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin OTP transaction", zap.Error(err))
		return fmt.Errorf("begin otp tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, otp.Mobile); err != nil {
		r.log.Error("Failed to lock mobile", zap.Error(err), zap.String("mobile", otp.Mobile))
		return fmt.Errorf("lock otp mobile %s: %w", otp.Mobile, err)
	}

	invalidate := `
		UPDATE otps
		SET is_verified = true
		WHERE mobile = $1
		  AND is_verified = false
		  AND expires_at > $2
	`
	tag, err := tx.Exec(ctx, invalidate, otp.Mobile, otp.CreatedAt)
	if err != nil {
		r.log.Error("Failed to invalidate previous OTPs", zap.Error(err), zap.String("mobile", otp.Mobile))
		return fmt.Errorf("invalidate otps for %s: %w", otp.Mobile, err)
	}

	insert := `
		INSERT INTO otps (id, mobile, code_hash, purpose, is_verified, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, insert,
		otp.ID,
		otp.Mobile,
		otp.CodeHash,
		otp.Purpose,
		otp.IsVerified,
		otp.ExpiresAt,
		otp.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("mobile", otp.Mobile),
			zap.String("purpose", string(otp.Purpose)),
		)
		return fmt.Errorf("create otp for %s: %w", otp.Mobile, err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit OTP transaction", zap.Error(err))
		return fmt.Errorf("commit otp tx: %w", err)
	}

	r.log.Debug("OTP stored",
		zap.String("mobile", otp.Mobile),
		zap.String("purpose", string(otp.Purpose)),
		zap.Int64("invalidated", tag.RowsAffected()),
	)
	return nil
}

// Consume atomically marks the newest matching pending code verified and
// returns it. Returns nil, nil when nothing matched.
func (r *otpRepository) Consume(ctx context.Context, mobile, codeHash string, purposes []entity.OTPPurpose, now time.Time) (*entity.OTP, error) {
	query := `
		UPDATE otps
		SET is_verified = true
		WHERE id = (
			SELECT id FROM otps
			WHERE mobile = $1
			  AND code_hash = $2
			  AND purpose = ANY($3)
			  AND is_verified = false
			  AND expires_at > $4
			ORDER BY created_at DESC
			LIMIT 1
		)
		AND is_verified = false
		RETURNING id, mobile, code_hash, purpose, is_verified, expires_at, created_at
	`

	names := make([]string, len(purposes))
	for i, p := range purposes {
		names[i] = string(p)
	}

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, mobile, codeHash, names, now).Scan(
		&otp.ID,
		&otp.Mobile,
		&otp.CodeHash,
		&otp.Purpose,
		&otp.IsVerified,
		&otp.ExpiresAt,
		&otp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to consume OTP",
			zap.Error(err),
			zap.String("mobile", mobile),
		)
		return nil, fmt.Errorf("consume otp for %s: %w", mobile, err)
	}

	return &otp, nil
}
