package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

const clientsTable = "clients"

var clientColumns = []string{
	"id", "name", "website", "industry", "business_type", "logo",
	"primary_color", "brand_font", "brand_voice", "primary_objective",
	"monthly_budget", "timeline", "icp", "age_range", "location",
	"pain_points", "status", "created_at", "updated_at",
}

type clientPostgresRepository struct {
	conn *postgres.Connection
}

// NewClientPostgresRepository cria o repositório de clientes sobre o backend
// relacional (driver "postgres").
func NewClientPostgresRepository(conn *postgres.Connection) ClientRepository {
	return &clientPostgresRepository{conn: conn}
}

func (r *clientPostgresRepository) List() ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *clientPostgresRepository) GetByID(id string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns...).
		From(clientsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return client, nil
}

func (r *clientPostgresRepository) Create(client *domain.Client) (*domain.Client, error) {
	now := time.Now()

	client.ID = uuid.New().String()
	client.CreatedAt = now
	client.UpdatedAt = now

	if client.PrimaryColor == "" {
		client.PrimaryColor = domain.DefaultPrimaryColor
	}
	if client.BrandFont == "" {
		client.BrandFont = domain.DefaultBrandFont
	}
	if client.BrandVoice == nil {
		client.BrandVoice = []string{}
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}

	brandVoice, err := json.Marshal(client.BrandVoice)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar brand_voice: %w", err)
	}

	query, args, err := squirrel.
		Insert(clientsTable).
		Columns(clientColumns...).
		Values(
			client.ID, client.Name, client.Website, client.Industry,
			client.BusinessType, client.Logo, client.PrimaryColor,
			client.BrandFont, brandVoice, client.PrimaryObjective,
			client.MonthlyBudget, client.Timeline, client.ICP,
			client.AgeRange, client.Location, client.PainPoints,
			client.Status, client.CreatedAt, client.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, err
	}

	return client, nil
}

// rowScanner cobre *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	client := &domain.Client{}
	var brandVoice []byte

	if err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Website,
		&client.Industry,
		&client.BusinessType,
		&client.Logo,
		&client.PrimaryColor,
		&client.BrandFont,
		&brandVoice,
		&client.PrimaryObjective,
		&client.MonthlyBudget,
		&client.Timeline,
		&client.ICP,
		&client.AgeRange,
		&client.Location,
		&client.PainPoints,
		&client.Status,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}

	client.BrandVoice = []string{}
	if len(brandVoice) > 0 {
		if err := json.Unmarshal(brandVoice, &client.BrandVoice); err != nil {
			return nil, fmt.Errorf("erro ao decodificar brand_voice: %w", err)
		}
	}

	return client, nil
}
