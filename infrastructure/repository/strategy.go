package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

type StrategyRepository interface {
	List() ([]*domain.Strategy, error)
	GetByID(id string) (*domain.Strategy, error)
	ListByClientID(clientID string) ([]*domain.Strategy, error)
	Create(strategy *domain.Strategy) (*domain.Strategy, error)
	Update(id string, updates *domain.UpdateStrategyRequest) (*domain.Strategy, error)
}

type strategyRepository struct {
	db *jsonfile.Database
}

func NewStrategyRepository(db *jsonfile.Database) StrategyRepository {
	return &strategyRepository{db: db}
}

func (r *strategyRepository) List() ([]*domain.Strategy, error) {
	var strategies []*domain.Strategy

	r.db.Read(func(data *jsonfile.Data) {
		strategies = make([]*domain.Strategy, 0, len(data.Strategies))
		for _, s := range data.Strategies {
			strategies = append(strategies, s)
		}
	})

	sortStrategies(strategies)

	return strategies, nil
}

func (r *strategyRepository) GetByID(id string) (*domain.Strategy, error) {
	var strategy *domain.Strategy

	r.db.Read(func(data *jsonfile.Data) {
		strategy = data.Strategies[id]
	})

	return strategy, nil
}

// ListByClientID percorre a coleção inteira filtrando pela chave estrangeira.
func (r *strategyRepository) ListByClientID(clientID string) ([]*domain.Strategy, error) {
	var strategies []*domain.Strategy

	r.db.Read(func(data *jsonfile.Data) {
		strategies = make([]*domain.Strategy, 0)
		for _, s := range data.Strategies {
			if s.ClientID != nil && *s.ClientID == clientID {
				strategies = append(strategies, s)
			}
		}
	})

	sortStrategies(strategies)

	return strategies, nil
}

func (r *strategyRepository) Create(strategy *domain.Strategy) (*domain.Strategy, error) {
	now := time.Now()

	strategy.ID = uuid.New().String()
	strategy.CreatedAt = now
	strategy.UpdatedAt = now

	if strategy.Status == "" {
		strategy.Status = domain.StrategyStatusActive
	}

	r.db.Write(func(data *jsonfile.Data) {
		data.Strategies[strategy.ID] = strategy
	})

	return strategy, nil
}

// Update aplica apenas os campos presentes na requisição sobre a estratégia
// existente e avança o UpdatedAt. Retorna ErrNotFound se o id não existir.
func (r *strategyRepository) Update(id string, updates *domain.UpdateStrategyRequest) (*domain.Strategy, error) {
	var updated *domain.Strategy
	err := ErrNotFound

	r.db.Write(func(data *jsonfile.Data) {
		strategy, ok := data.Strategies[id]
		if !ok {
			return
		}

		if updates.Name != nil {
			strategy.Name = *updates.Name
		}
		if updates.ClientID != nil {
			strategy.ClientID = updates.ClientID
		}
		if updates.Description != nil {
			strategy.Description = updates.Description
		}
		if updates.Sections != nil {
			strategy.Sections = *updates.Sections
		}
		if updates.Status != nil {
			strategy.Status = *updates.Status
		}
		strategy.UpdatedAt = time.Now()

		updated = strategy
		err = nil
	})

	return updated, err
}

func sortStrategies(strategies []*domain.Strategy) {
	sort.Slice(strategies, func(i, j int) bool {
		return strategies[i].CreatedAt.Before(strategies[j].CreatedAt)
	})
}
