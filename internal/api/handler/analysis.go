package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/internal/usecases/analyzing"
	"github.com/agencyflow/agency-manager-api/pkg/apiErrors"
)

// Analyze gera uma análise de marketing para o cliente informado no corpo da
// requisição. Falha do serviço externo não gera erro: a resposta carrega o
// conteúdo de fallback com a origem marcada.
func Analyze(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzing.AnalysisRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.ClientID == "" || req.AnalysisType == "" || req.ClientData.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"clientId, analysisType e clientData são obrigatórios", nil)
			return
		}

		result, err := service.Analyze(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
