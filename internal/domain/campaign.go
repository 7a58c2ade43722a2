package domain

import "time"

// Status possíveis de uma campanha
const (
	CampaignStatusDraft     = "Draft"
	CampaignStatusLive      = "Live"
	CampaignStatusPaused    = "Paused"
	CampaignStatusCompleted = "Completed"
)

// Campaign representa uma campanha de mídia vinculada (opcionalmente) a um
// cliente e a uma estratégia.
type Campaign struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ClientID   *string    `json:"clientId"`
	StrategyID *string    `json:"strategyId"`
	Platform   *string    `json:"platform"` // 'facebook', 'google', 'instagram', etc.
	Status     string     `json:"status"`
	Budget     *int       `json:"budget"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
