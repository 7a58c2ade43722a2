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

const strategiesTable = "strategies"

var strategyColumns = []string{
	"id", "name", "client_id", "description", "sections", "status",
	"created_at", "updated_at",
}

type strategyPostgresRepository struct {
	conn *postgres.Connection
}

func NewStrategyPostgresRepository(conn *postgres.Connection) StrategyRepository {
	return &strategyPostgresRepository{conn: conn}
}

func (r *strategyPostgresRepository) List() ([]*domain.Strategy, error) {
	return r.list(nil)
}

func (r *strategyPostgresRepository) ListByClientID(clientID string) ([]*domain.Strategy, error) {
	return r.list(squirrel.Eq{"client_id": clientID})
}

func (r *strategyPostgresRepository) list(where any) ([]*domain.Strategy, error) {
	queryBuilder := squirrel.
		Select(strategyColumns...).
		From(strategiesTable).
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

	strategies := make([]*domain.Strategy, 0)
	for rows.Next() {
		strategy, err := scanStrategy(rows)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}

	return strategies, rows.Err()
}

func (r *strategyPostgresRepository) GetByID(id string) (*domain.Strategy, error) {
	query, args, err := squirrel.
		Select(strategyColumns...).
		From(strategiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	strategy, err := scanStrategy(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return strategy, nil
}

func (r *strategyPostgresRepository) Create(strategy *domain.Strategy) (*domain.Strategy, error) {
	now := time.Now()

	strategy.ID = uuid.New().String()
	strategy.CreatedAt = now
	strategy.UpdatedAt = now

	if strategy.Status == "" {
		strategy.Status = domain.StrategyStatusActive
	}

	sections, err := marshalSections(strategy.Sections)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(strategiesTable).
		Columns(strategyColumns...).
		Values(
			strategy.ID, strategy.Name, strategy.ClientID,
			strategy.Description, sections, strategy.Status,
			strategy.CreatedAt, strategy.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, err
	}

	return strategy, nil
}

// Update aplica a atualização parcial em uma única instrução. A leitura após a
// escrita devolve o registro completo já mesclado.
func (r *strategyPostgresRepository) Update(id string, updates *domain.UpdateStrategyRequest) (*domain.Strategy, error) {
	updateBuilder := squirrel.
		Update(strategiesTable).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if updates.Name != nil {
		updateBuilder = updateBuilder.Set("name", *updates.Name)
	}
	if updates.ClientID != nil {
		updateBuilder = updateBuilder.Set("client_id", *updates.ClientID)
	}
	if updates.Description != nil {
		updateBuilder = updateBuilder.Set("description", *updates.Description)
	}
	if updates.Sections != nil {
		sections, err := marshalSections(*updates.Sections)
		if err != nil {
			return nil, err
		}
		updateBuilder = updateBuilder.Set("sections", sections)
	}
	if updates.Status != nil {
		updateBuilder = updateBuilder.Set("status", *updates.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(id)
}

// marshalSections serializa o mapa de seções para a coluna JSONB. Mapa nulo
// vira objeto vazio para nunca gravar NULL na coluna.
func marshalSections(sections map[string]string) ([]byte, error) {
	if sections == nil {
		return []byte("{}"), nil
	}

	raw, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar sections: %w", err)
	}

	return raw, nil
}

func scanStrategy(row rowScanner) (*domain.Strategy, error) {
	strategy := &domain.Strategy{}
	var sections []byte

	if err := row.Scan(
		&strategy.ID,
		&strategy.Name,
		&strategy.ClientID,
		&strategy.Description,
		&sections,
		&strategy.Status,
		&strategy.CreatedAt,
		&strategy.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &strategy.Sections); err != nil {
			return nil, fmt.Errorf("erro ao decodificar sections: %w", err)
		}
	}

	return strategy, nil
}
