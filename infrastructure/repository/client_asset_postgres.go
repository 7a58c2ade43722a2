package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

const clientAssetsTable = "client_assets"

var clientAssetColumns = []string{
	"id", "client_id", "name", "type", "url", "description",
	"file_size", "mime_type", "is_url", "created_at", "updated_at",
}

type clientAssetPostgresRepository struct {
	conn *postgres.Connection
}

func NewClientAssetPostgresRepository(conn *postgres.Connection) ClientAssetRepository {
	return &clientAssetPostgresRepository{conn: conn}
}

func (r *clientAssetPostgresRepository) List() ([]*domain.ClientAsset, error) {
	return r.list(nil)
}

func (r *clientAssetPostgresRepository) ListByClientID(clientID string) ([]*domain.ClientAsset, error) {
	return r.list(squirrel.Eq{"client_id": clientID})
}

func (r *clientAssetPostgresRepository) list(where any) ([]*domain.ClientAsset, error) {
	queryBuilder := squirrel.
		Select(clientAssetColumns...).
		From(clientAssetsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := make([]*domain.ClientAsset, 0)
	for rows.Next() {
		asset := &domain.ClientAsset{}
		if err := rows.Scan(
			&asset.ID,
			&asset.ClientID,
			&asset.Name,
			&asset.Type,
			&asset.URL,
			&asset.Description,
			&asset.FileSize,
			&asset.MimeType,
			&asset.IsURL,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

func (r *clientAssetPostgresRepository) Create(asset *domain.ClientAsset) (*domain.ClientAsset, error) {
	now := time.Now()

	asset.ID = uuid.New().String()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	if asset.IsURL == "" {
		asset.IsURL = "false"
	}

	query, args, err := squirrel.
		Insert(clientAssetsTable).
		Columns(clientAssetColumns...).
		Values(
			asset.ID, asset.ClientID, asset.Name, asset.Type, asset.URL,
			asset.Description, asset.FileSize, asset.MimeType, asset.IsURL,
			asset.CreatedAt, asset.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, err
	}

	return asset, nil
}

func (r *clientAssetPostgresRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(clientAssetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	// Remoção de id ausente não é erro
	_, err = r.conn.Exec(query, args...)
	return err
}
