package domain

import "time"

// Status possíveis de um cliente
const (
	ClientStatusActive     = "Active"
	ClientStatusOnboarding = "Onboarding"
	ClientStatusPaused     = "Paused"
)

// Valores padrão aplicados na criação de um cliente
const (
	DefaultPrimaryColor = "#2563EB"
	DefaultBrandFont    = "Inter"
)

// Client representa um cliente da agência. É a entidade raiz: estratégias,
// campanhas e assets referenciam o cliente por chave estrangeira (não validada).
type Client struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Website          *string   `json:"website"`
	Industry         *string   `json:"industry"`
	BusinessType     *string   `json:"businessType"` // 'B2B' ou 'B2C'
	Logo             *string   `json:"logo"`
	PrimaryColor     string    `json:"primaryColor"`
	BrandFont        string    `json:"brandFont"`
	BrandVoice       []string  `json:"brandVoice"`
	PrimaryObjective *string   `json:"primaryObjective"` // 'leads', 'sales', 'awareness', 'traffic'
	MonthlyBudget    *int      `json:"monthlyBudget"`
	Timeline         *int      `json:"timeline"` // em meses
	ICP              *string   `json:"icp"`
	AgeRange         *string   `json:"ageRange"`
	Location         *string   `json:"location"`
	PainPoints       *string   `json:"painPoints"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
