// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

type ClientRepository interface {
	List() ([]*domain.Client, error)
	GetByID(id string) (*domain.Client, error)
	Create(client *domain.Client) (*domain.Client, error)
}

type clientRepository struct {
	db *jsonfile.Database
}

func NewClientRepository(db *jsonfile.Database) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) List() ([]*domain.Client, error) {
	var clients []*domain.Client

	r.db.Read(func(data *jsonfile.Data) {
		clients = make([]*domain.Client, 0, len(data.Clients))
		for _, c := range data.Clients {
			clients = append(clients, c)
		}
	})

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})

	return clients, nil
}

func (r *clientRepository) GetByID(id string) (*domain.Client, error) {
	var client *domain.Client

	r.db.Read(func(data *jsonfile.Data) {
		client = data.Clients[id]
	})

	return client, nil
}

func (r *clientRepository) Create(client *domain.Client) (*domain.Client, error) {
	now := time.Now()

	client.ID = uuid.New().String()
	client.CreatedAt = now
	client.UpdatedAt = now

	// Defaults de criação
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

	r.db.Write(func(data *jsonfile.Data) {
		data.Clients[client.ID] = client
	})

	return client, nil
}
