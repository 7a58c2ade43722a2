package domain

import "time"

// Tipos de asset aceitos
const (
	AssetTypeDocument = "document"
	AssetTypeImage    = "image"
	AssetTypeURL      = "url"
)

// ClientAsset referencia um arquivo enviado ou uma URL externa associada a um
// cliente. Não há armazenamento real do conteúdo, apenas a string da URL.
// IsUrl é serializado como string ("true"/"false") por compatibilidade com o
// formato persistido.
type ClientAsset struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	URL         *string   `json:"url"`
	Description *string   `json:"description"`
	FileSize    *int      `json:"fileSize"` // em bytes
	MimeType    *string   `json:"mimeType"`
	IsURL       string    `json:"isUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
