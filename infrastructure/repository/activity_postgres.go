package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

const activitiesTable = "activities"

var activityColumns = []string{
	"id", "\"user\"", "action", "target", "target_name", "target_id",
	"client_id", "details", "created_at",
}

type activityPostgresRepository struct {
	conn *postgres.Connection
}

func NewActivityPostgresRepository(conn *postgres.Connection) ActivityRepository {
	return &activityPostgresRepository{conn: conn}
}

func (r *activityPostgresRepository) List(limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query, args, err := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
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

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity := &domain.Activity{}
		if err := rows.Scan(
			&activity.ID,
			&activity.User,
			&activity.Action,
			&activity.Target,
			&activity.TargetName,
			&activity.TargetID,
			&activity.ClientID,
			&activity.Details,
			&activity.CreatedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

func (r *activityPostgresRepository) Create(activity *domain.Activity) (*domain.Activity, error) {
	activity.ID = uuid.New().String()
	activity.CreatedAt = time.Now()

	if activity.User == "" {
		activity.User = domain.DefaultActivityUser
	}

	query, args, err := squirrel.
		Insert(activitiesTable).
		Columns(activityColumns...).
		Values(
			activity.ID, activity.User, activity.Action, activity.Target,
			activity.TargetName, activity.TargetID, activity.ClientID,
			activity.Details, activity.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, err
	}

	return activity, nil
}
