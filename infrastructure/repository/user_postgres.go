package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/postgres"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "password"}

type userPostgresRepository struct {
	conn *postgres.Connection
}

func NewUserPostgresRepository(conn *postgres.Connection) UserRepository {
	return &userPostgresRepository{conn: conn}
}

func (r *userPostgresRepository) GetByID(id string) (*domain.User, error) {
	return r.get(squirrel.Eq{"id": id})
}

func (r *userPostgresRepository) GetByUsername(username string) (*domain.User, error) {
	return r.get(squirrel.Eq{"username": username})
}

func (r *userPostgresRepository) get(where any) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	if err := r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *userPostgresRepository) Create(user *domain.User) (*domain.User, error) {
	user.ID = uuid.New().String()

	query, args, err := squirrel.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Password).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, err
	}

	return user, nil
}
