package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/internal/domain"
)

func TestActivityPostgresListUsesDefaultLimit(t *testing.T) {
	conn, mock := mockConnection(t)
	repo := NewActivityPostgresRepository(conn)

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, "user", action, target, target_name, target_id, client_id, details, created_at FROM activities ORDER BY created_at DESC LIMIT 10`,
	)).WillReturnRows(
		sqlmock.NewRows([]string{
			"id", "user", "action", "target", "target_name", "target_id",
			"client_id", "details", "created_at",
		}).AddRow(
			"activity-1", "System", "created", "client", "Acme Corp",
			"client-1", "client-1", "New client onboarded", now,
		),
	)

	activities, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "created", activities[0].Action)
	assert.Equal(t, "System", activities[0].User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityPostgresCreateDefaultsUser(t *testing.T) {
	conn, mock := mockConnection(t)
	repo := NewActivityPostgresRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO activities (id,"user",action,target,target_name,target_id,client_id,details,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
	)).WillReturnResult(sqlmock.NewResult(0, 1))

	activity, err := repo.Create(&domain.Activity{Action: "created", Target: "client"})
	require.NoError(t, err)

	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, domain.DefaultActivityUser, activity.User)
	assert.NoError(t, mock.ExpectationsWereMet())
}
