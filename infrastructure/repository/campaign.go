package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

type CampaignRepository interface {
	List() ([]*domain.Campaign, error)
	GetByID(id string) (*domain.Campaign, error)
	ListByClientID(clientID string) ([]*domain.Campaign, error)
	Create(campaign *domain.Campaign) (*domain.Campaign, error)
}

type campaignRepository struct {
	db *jsonfile.Database
}

func NewCampaignRepository(db *jsonfile.Database) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) List() ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign

	r.db.Read(func(data *jsonfile.Data) {
		campaigns = make([]*domain.Campaign, 0, len(data.Campaigns))
		for _, c := range data.Campaigns {
			campaigns = append(campaigns, c)
		}
	})

	sortCampaigns(campaigns)

	return campaigns, nil
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	var campaign *domain.Campaign

	r.db.Read(func(data *jsonfile.Data) {
		campaign = data.Campaigns[id]
	})

	return campaign, nil
}

func (r *campaignRepository) ListByClientID(clientID string) ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign

	r.db.Read(func(data *jsonfile.Data) {
		campaigns = make([]*domain.Campaign, 0)
		for _, c := range data.Campaigns {
			if c.ClientID != nil && *c.ClientID == clientID {
				campaigns = append(campaigns, c)
			}
		}
	})

	sortCampaigns(campaigns)

	return campaigns, nil
}

func (r *campaignRepository) Create(campaign *domain.Campaign) (*domain.Campaign, error) {
	now := time.Now()

	campaign.ID = uuid.New().String()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}

	r.db.Write(func(data *jsonfile.Data) {
		data.Campaigns[campaign.ID] = campaign
	})

	return campaign, nil
}

func sortCampaigns(campaigns []*domain.Campaign) {
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
	})
}
