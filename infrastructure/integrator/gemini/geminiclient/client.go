// Package geminiclient encapsula as chamadas ao endpoint de geração de texto
// do Gemini.
package geminiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/agencyflow/agency-manager-api/internal/config"
)

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente Gemini.
func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
