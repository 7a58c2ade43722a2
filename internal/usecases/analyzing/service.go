// Package analyzing implementa a análise assistida por IA: monta o prompt a
// partir do perfil do cliente, chama o endpoint generativo e substitui a
// resposta por conteúdo estático quando a chamada externa falha.
package analyzing

import (
	"context"
	"time"

	"github.com/agencyflow/agency-manager-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/pkg/log"
)

// Tipos de análise suportados
const (
	AnalysisTypeStrategy     = "strategy"
	AnalysisTypeContent      = "content"
	AnalysisTypeOptimization = "optimization"
)

// Origem do resultado devolvido ao cliente
const (
	SourceGeminiAPI = "gemini-api"
	SourceFallback  = "enhanced-fallback"
)

// AnalysisRequest é o corpo aceito em POST /api/ai/analyze. ClientData carrega
// o perfil do cliente como enviado pelo navegador; nenhum campo é validado
// contra o armazenamento.
type AnalysisRequest struct {
	ClientID     string        `json:"clientId"`
	AnalysisType string        `json:"analysisType"`
	ClientData   domain.Client `json:"clientData"`
	Section      string        `json:"section,omitempty"`
	Prompt       string        `json:"prompt,omitempty"`
	IsRegenerate bool          `json:"isRegenerate,omitempty"`
}

// AnalysisResult é a resposta da análise. Source indica se o texto veio da API
// ou do fallback estático.
type AnalysisResult struct {
	Result       string    `json:"result"`
	ClientName   string    `json:"clientName"`
	AnalysisType string    `json:"analysisType"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
}

type Analyzer interface {
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error)
}

type Service struct {
	client       geminiclient.Client
	activityRepo repository.ActivityRepository
}

func NewService(client geminiclient.Client, activityRepo repository.ActivityRepository) Analyzer {
	return &Service{
		client:       client,
		activityRepo: activityRepo,
	}
}

// Analyze monta o prompt (ou usa o prompt do chamador em regeneração de
// seção), chama o Gemini e cai para o conteúdo estático em qualquer falha.
// A falha externa nunca é propagada: a resposta é sempre 2xx com o campo
// Source indicando a origem.
func (s *Service) Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error) {
	prompt := buildPrompt(req)

	result := &AnalysisResult{
		ClientName:   req.ClientData.Name,
		AnalysisType: req.AnalysisType,
		Timestamp:    time.Now(),
		Source:       SourceGeminiAPI,
	}

	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil || text == "" {
		log.ForContext(ctx).WithError(err).
			Warn("Gemini indisponível, usando fallback estático")
		text = fallbackResult(req)
		result.Source = SourceFallback
	}

	result.Result = text

	s.logActivity(ctx, req)

	log.ForContext(ctx).WithFields(log.Fields{
		"client":        req.ClientData.Name,
		"analysis_type": req.AnalysisType,
		"source":        result.Source,
	}).Info("Análise concluída")

	return result, nil
}

// logActivity registra a atividade de geração. Falha aqui não invalida a
// análise já produzida.
func (s *Service) logActivity(ctx context.Context, req *AnalysisRequest) {
	details := "AI analysis generated"
	activity := &domain.Activity{
		Action:     "generated",
		Target:     "analysis",
		TargetName: &req.AnalysisType,
		ClientID:   &req.ClientID,
		Details:    &details,
	}

	if _, err := s.activityRepo.Create(activity); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar atividade de análise")
	}
}
