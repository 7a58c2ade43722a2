package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

// DefaultActivityLimit é o tamanho padrão do feed de atividades recentes.
const DefaultActivityLimit = 10

type ActivityRepository interface {
	List(limit int) ([]*domain.Activity, error)
	Create(activity *domain.Activity) (*domain.Activity, error)
}

type activityRepository struct {
	db *jsonfile.Database
}

func NewActivityRepository(db *jsonfile.Database) ActivityRepository {
	return &activityRepository{db: db}
}

// List retorna as atividades mais recentes, ordenadas por data de criação
// decrescente e truncadas em limit. Não há cursor de paginação.
func (r *activityRepository) List(limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	var activities []*domain.Activity

	r.db.Read(func(data *jsonfile.Data) {
		activities = make([]*domain.Activity, 0, len(data.Activities))
		for _, a := range data.Activities {
			activities = append(activities, a)
		}
	})

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	if len(activities) > limit {
		activities = activities[:limit]
	}

	return activities, nil
}

func (r *activityRepository) Create(activity *domain.Activity) (*domain.Activity, error) {
	activity.ID = uuid.New().String()
	// Precisão de nanossegundos mantém a ordenação do feed bem definida para
	// escritas no mesmo milissegundo.
	activity.CreatedAt = time.Now()

	if activity.User == "" {
		activity.User = domain.DefaultActivityUser
	}

	r.db.Write(func(data *jsonfile.Data) {
		data.Activities[activity.ID] = activity
	})

	return activity, nil
}
