package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

type ClientAssetRepository interface {
	List() ([]*domain.ClientAsset, error)
	ListByClientID(clientID string) ([]*domain.ClientAsset, error)
	Create(asset *domain.ClientAsset) (*domain.ClientAsset, error)
	Delete(id string) error
}

type clientAssetRepository struct {
	db *jsonfile.Database
}

func NewClientAssetRepository(db *jsonfile.Database) ClientAssetRepository {
	return &clientAssetRepository{db: db}
}

func (r *clientAssetRepository) List() ([]*domain.ClientAsset, error) {
	var assets []*domain.ClientAsset

	r.db.Read(func(data *jsonfile.Data) {
		assets = make([]*domain.ClientAsset, 0, len(data.ClientAssets))
		for _, a := range data.ClientAssets {
			assets = append(assets, a)
		}
	})

	sortAssets(assets)

	return assets, nil
}

func (r *clientAssetRepository) ListByClientID(clientID string) ([]*domain.ClientAsset, error) {
	var assets []*domain.ClientAsset

	r.db.Read(func(data *jsonfile.Data) {
		assets = make([]*domain.ClientAsset, 0)
		for _, a := range data.ClientAssets {
			if a.ClientID == clientID {
				assets = append(assets, a)
			}
		}
	})

	sortAssets(assets)

	return assets, nil
}

func (r *clientAssetRepository) Create(asset *domain.ClientAsset) (*domain.ClientAsset, error) {
	now := time.Now()

	asset.ID = uuid.New().String()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	if asset.IsURL == "" {
		asset.IsURL = "false"
	}

	r.db.Write(func(data *jsonfile.Data) {
		data.ClientAssets[asset.ID] = asset
	})

	return asset, nil
}

// Delete remove o asset do mapa. Não há verificação de existência: remover um
// id ausente não é erro.
func (r *clientAssetRepository) Delete(id string) error {
	r.db.Write(func(data *jsonfile.Data) {
		delete(data.ClientAssets, id)
	})

	return nil
}

func sortAssets(assets []*domain.ClientAsset) {
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].CreatedAt.Before(assets[j].CreatedAt)
	})
}
