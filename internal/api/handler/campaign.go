package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/pkg/apiErrors"
)

// ListCampaigns lista as campanhas, opcionalmente filtradas por clientId
func ListCampaigns(campaignRepo repository.CampaignRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			campaigns []*domain.Campaign
			err       error
		)

		if clientID := r.URL.Query().Get("clientId"); clientID != "" {
			campaigns, err = campaignRepo.ListByClientID(clientID)
		} else {
			campaigns, err = campaignRepo.List()
		}
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateCampaign cria uma nova campanha e registra a atividade
func CreateCampaign(campaignRepo repository.CampaignRepository, activityRepo repository.ActivityRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.Campaign

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da campanha é obrigatório", nil)
			return
		}

		campaign, err := campaignRepo.Create(&req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao criar campanha", nil)
			return
		}

		details := "New campaign created"
		logActivity(activityRepo, &domain.Activity{
			Action:     "created",
			Target:     "campaign",
			TargetName: &campaign.Name,
			TargetID:   &campaign.ID,
			ClientID:   campaign.ClientID,
			Details:    &details,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
