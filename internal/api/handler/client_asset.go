package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/infrastructure/repository"
	"github.com/agencyflow/agency-manager-api/internal/domain"
	"github.com/agencyflow/agency-manager-api/pkg/apiErrors"
)

// ListClientAssets lista os assets, opcionalmente filtrados por clientId
func ListClientAssets(assetRepo repository.ClientAssetRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			assets []*domain.ClientAsset
			err    error
		)

		if clientID := r.URL.Query().Get("clientId"); clientID != "" {
			assets, err = assetRepo.ListByClientID(clientID)
		} else {
			assets, err = assetRepo.List()
		}
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao buscar assets", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(assets); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateClientAsset registra a referência de um asset e a atividade de upload
func CreateClientAsset(assetRepo repository.ClientAssetRepository, activityRepo repository.ActivityRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ClientAsset

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Name == "" || req.ClientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e clientId do asset são obrigatórios", nil)
			return
		}

		asset, err := assetRepo.Create(&req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao criar asset", nil)
			return
		}

		details := fmt.Sprintf("Uploaded %s: %s", asset.Type, asset.Name)
		logActivity(activityRepo, &domain.Activity{
			Action:     "uploaded",
			Target:     "asset",
			TargetName: &asset.Name,
			TargetID:   &asset.ID,
			ClientID:   &asset.ClientID,
			Details:    &details,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(asset); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteClientAsset remove a referência do asset. Remoção de ID inexistente
// responde 204 do mesmo jeito.
func DeleteClientAsset(assetRepo repository.ClientAssetRepository, activityRepo repository.ActivityRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := assetRepo.Delete(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao remover asset", nil)
			return
		}

		targetName := "asset"
		details := "Asset deleted"
		logActivity(activityRepo, &domain.Activity{
			Action:     "deleted",
			Target:     "asset",
			TargetName: &targetName,
			TargetID:   &id,
			Details:    &details,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
