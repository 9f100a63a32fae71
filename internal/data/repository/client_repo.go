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

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log.With(zap.String("repository", "client")),
	}
}

const clientSelect = `SELECT id, name, logo_url, website, sort_order, created_at FROM clients`

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, logo_url, website, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query, client.ID, client.Name, client.LogoURL, client.Website, client.SortOrder, client.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create client", zap.Error(err), zap.String("name", client.Name))
		return fmt.Errorf("create client %s: %w", client.Name, err)
	}
	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	rows, err := r.db.Query(ctx, clientSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("find client %s: %w", id.String(), err)
	}

	client, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.Client])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find client", zap.Error(err), zap.String("client_id", id.String()))
		return nil, fmt.Errorf("scan client %s: %w", id.String(), err)
	}
	return client, nil
}

func (r *clientRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	rows, err := r.db.Query(ctx, clientSelect+` ORDER BY sort_order, name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list clients", zap.Error(err))
		return nil, fmt.Errorf("list clients: %w", err)
	}

	clients, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Client])
	if err != nil {
		return nil, fmt.Errorf("scan client rows: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		r.log.Error("Failed to count clients", zap.Error(err))
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return total, nil
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `UPDATE clients SET name = $2, logo_url = $3, website = $4, sort_order = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, client.ID, client.Name, client.LogoURL, client.Website, client.SortOrder)
	if err != nil {
		r.log.Error("Failed to update client", zap.Error(err), zap.String("client_id", client.ID.String()))
		return fmt.Errorf("update client %s: %w", client.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", client.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete client", zap.Error(err), zap.String("client_id", id.String()))
		return fmt.Errorf("delete client %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
