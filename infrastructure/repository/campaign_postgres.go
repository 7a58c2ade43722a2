package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id", "name", "client_id", "strategy_id", "platform", "status",
	"budget", "start_date", "end_date", "created_at", "updated_at",
}

type campaignPostgresRepository struct {
	conn *postgres.Connection
}

func NewCampaignPostgresRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignPostgresRepository{conn: conn}
}

func (r *campaignPostgresRepository) List() ([]*domain.Campaign, error) {
	return r.list(nil)
}

func (r *campaignPostgresRepository) ListByClientID(clientID string) ([]*domain.Campaign, error) {
	return r.list(squirrel.Eq{"client_id": clientID})
}

func (r *campaignPostgresRepository) list(where any) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignPostgresRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignPostgresRepository) Create(campaign *domain.Campaign) (*domain.Campaign, error) {
	now := time.Now()

	campaign.ID = uuid.New().String()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}

	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns(campaignColumns...).
		Values(
			campaign.ID, campaign.Name, campaign.ClientID,
			campaign.StrategyID, campaign.Platform, campaign.Status,
			campaign.Budget, campaign.StartDate, campaign.EndDate,
			campaign.CreatedAt, campaign.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, err
	}

	return campaign, nil
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	if err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.ClientID,
		&campaign.StrategyID,
		&campaign.Platform,
		&campaign.Status,
		&campaign.Budget,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return campaign, nil
}
