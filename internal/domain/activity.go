package domain

import "time"

// DefaultActivityUser é atribuído quando a requisição não informa o autor.
const DefaultActivityUser = "System"

// Activity é um registro de auditoria append-only: descreve uma ação de
// criação/atualização/remoção executada sobre outra entidade. Nunca é
// atualizada nem removida.
type Activity struct {
	ID         string    `json:"id"`
	User       string    `json:"user"`
	Action     string    `json:"action"` // ex: "created", "updated", "generated"
	Target     string    `json:"target"` // ex: "client", "strategy", "campaign"
	TargetName *string   `json:"targetName"`
	TargetID   *string   `json:"targetId"`
	ClientID   *string   `json:"clientId"`
	Details    *string   `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}
