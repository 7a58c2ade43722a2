package repository

import (
	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

type UserRepository interface {
	GetByID(id string) (*domain.User, error)
	GetByUsername(username string) (*domain.User, error)
	Create(user *domain.User) (*domain.User, error)
}

type userRepository struct {
	db *jsonfile.Database
}

func NewUserRepository(db *jsonfile.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id string) (*domain.User, error) {
	var user *domain.User

	r.db.Read(func(data *jsonfile.Data) {
		user = data.Users[id]
	})

	return user, nil
}

func (r *userRepository) GetByUsername(username string) (*domain.User, error) {
	var user *domain.User

	r.db.Read(func(data *jsonfile.Data) {
		for _, u := range data.Users {
			if u.Username == username {
				user = u
				return
			}
		}
	})

	return user, nil
}

// Create armazena o usuário como recebido: o hash da senha é responsabilidade
// do chamador.
func (r *userRepository) Create(user *domain.User) (*domain.User, error) {
	user.ID = uuid.New().String()

	r.db.Write(func(data *jsonfile.Data) {
		data.Users[user.ID] = user
	})

	return user, nil
}
