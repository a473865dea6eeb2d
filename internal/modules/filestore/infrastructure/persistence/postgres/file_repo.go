package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/paperledger/invoice-backend/internal/modules/filestore/domain"
)

type PgFileRepository struct {
	db *sqlx.DB
}

func NewPgFileRepository(db *sqlx.DB) *PgFileRepository {
	return &PgFileRepository{db: db}
}

func (r *PgFileRepository) Create(ctx context.Context, asset *domain.FileAsset) error {
	query := `
		INSERT INTO file_assets (id, file_name, url, storage_key, created_at)
		VALUES (:id, :file_name, :url, :storage_key, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, asset)
	return err
}

func (r *PgFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FileAsset, error) {
	query := `
		SELECT id, file_name, url, storage_key, created_at FROM file_assets
		WHERE id = $1
	`
	var asset domain.FileAsset
	if err := r.db.GetContext(ctx, &asset, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return &asset, nil
}
