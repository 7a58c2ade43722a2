package domain

import "time"

// Status possíveis de uma estratégia
const (
	StrategyStatusActive   = "Active"
	StrategyStatusDraft    = "Draft"
	StrategyStatusArchived = "Archived"
)

// Strategy é o plano de marketing de um cliente. As seções são blocos de texto
// livre indexados pelo título da seção (ex: "Market Analysis").
type Strategy struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ClientID    *string           `json:"clientId"`
	Description *string           `json:"description"`
	Sections    map[string]string `json:"sections"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// UpdateStrategyRequest carrega uma atualização parcial: apenas os campos
// presentes no corpo da requisição são aplicados sobre a estratégia existente.
// Sections, quando presente, substitui o mapa inteiro.
type UpdateStrategyRequest struct {
	Name        *string            `json:"name"`
	ClientID    *string            `json:"clientId"`
	Description *string            `json:"description"`
	Sections    *map[string]string `json:"sections"`
	Status      *string            `json:"status"`
}
