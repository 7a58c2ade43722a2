package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

func mockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

// Estratégia sem seções grava objeto vazio na coluna JSONB, nunca NULL.
func TestStrategyPostgresCreateWithoutSectionsStoresEmptyObject(t *testing.T) {
	conn, mock := mockConnection(t)
	repo := NewStrategyPostgresRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO strategies (id,name,client_id,description,sections,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)",
	)).WithArgs(
		sqlmock.AnyArg(), "Plano Q1", "client-1", nil,
		[]byte("{}"), domain.StrategyStatusActive,
		sqlmock.AnyArg(), sqlmock.AnyArg(),
	).WillReturnResult(sqlmock.NewResult(0, 1))

	clientID := "client-1"
	strategy, err := repo.Create(&domain.Strategy{
		Name:     "Plano Q1",
		ClientID: &clientID,
	})
	require.NoError(t, err)
	assert.Nil(t, strategy.Sections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStrategyPostgresUpdateMissingReturnsErrNotFound(t *testing.T) {
	conn, mock := mockConnection(t)
	repo := NewStrategyPostgresRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE strategies SET updated_at = $1, name = $2 WHERE id = $3",
	)).WillReturnResult(sqlmock.NewResult(0, 0))

	name := "Plano revisado"
	_, err := repo.Update("nope", &domain.UpdateStrategyRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStrategyPostgresUpdateReturnsMergedRecord(t *testing.T) {
	conn, mock := mockConnection(t)
	repo := NewStrategyPostgresRepository(conn)

	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE strategies SET updated_at = $1, name = $2 WHERE id = $3",
	)).WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, client_id, description, sections, status, created_at, updated_at FROM strategies WHERE id = $1",
	)).WithArgs("strategy-1").WillReturnRows(
		sqlmock.NewRows(strategyColumns).AddRow(
			"strategy-1", "Plano revisado", "client-1", "Descrição",
			[]byte(`{"Market Analysis":"texto"}`), "Active", now, now,
		),
	)

	name := "Plano revisado"
	strategy, err := repo.Update("strategy-1", &domain.UpdateStrategyRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Plano revisado", strategy.Name)
	assert.Equal(t, map[string]string{"Market Analysis": "texto"}, strategy.Sections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStrategyPostgresListByClientID(t *testing.T) {
	conn, mock := mockConnection(t)
	repo := NewStrategyPostgresRepository(conn)

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, client_id, description, sections, status, created_at, updated_at FROM strategies WHERE client_id = $1 ORDER BY created_at ASC",
	)).WithArgs("client-1").WillReturnRows(
		sqlmock.NewRows(strategyColumns).AddRow(
			"strategy-1", "Plano Q1", "client-1", nil,
			[]byte(`{}`), "Active", now, now,
		),
	)

	strategies, err := repo.ListByClientID("client-1")
	require.NoError(t, err)
	require.Len(t, strategies, 1)
	assert.Equal(t, "Plano Q1", strategies[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
